package dashboard

// pageTemplate is the whole dashboard page. Styling leans on the Tailwind
// CDN build, charts on Chart.js; both load from CDN so the generated file
// has no local asset dependencies.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Health Dashboard</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        body { background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%); min-height: 100vh; }
        .glass { background: rgba(255,255,255,0.05); backdrop-filter: blur(10px); border: 1px solid rgba(255,255,255,0.1); }
        .streak-fire { animation: pulse 2s infinite; }
        @keyframes pulse { 0%, 100% { opacity: 1; } 50% { opacity: 0.7; } }
    </style>
</head>
<body class="text-white p-6">
    <div class="max-w-6xl mx-auto">
        <div class="mb-8">
            <h1 class="text-3xl font-bold mb-2">Health Dashboard</h1>
            <p class="text-gray-400">Last updated: {{.Generated}}</p>
        </div>

        <div class="grid grid-cols-2 gap-4 mb-6">
            <div class="glass rounded-2xl p-6 text-center">
                <div class="text-4xl mb-1 streak-fire">🔥</div>
                <div class="text-4xl font-bold text-orange-400">{{.CurrentStreak}}</div>
                <div class="text-gray-400 text-sm">Current Streak</div>
            </div>
            <div class="glass rounded-2xl p-6 text-center">
                <div class="text-4xl mb-1">🏆</div>
                <div class="text-4xl font-bold text-yellow-400">{{.LongestStreak}}</div>
                <div class="text-gray-400 text-sm">Longest Streak</div>
            </div>
        </div>

        <div class="glass rounded-2xl p-6 mb-6">
            <h2 class="text-xl font-semibold mb-4">This Week</h2>
            <div class="flex justify-between gap-2">
                {{- range .WeekDays}}
                <div class="flex-1 text-center p-3 rounded-xl {{if .Done}}bg-green-500{{else}}bg-gray-700{{end}} {{if .Today}}ring-2 ring-white{{end}}">
                    <div class="text-xs text-gray-300">{{.Label}}</div>
                    <div class="text-lg">{{if .Done}}✓{{end}}</div>
                </div>
                {{- end}}
            </div>
        </div>

        <div class="glass rounded-2xl p-6 mb-6">
            <div class="flex justify-between items-center cursor-pointer" onclick="toggleSection('calendar')">
                <h2 class="text-xl font-semibold">Calendar</h2>
                <span id="calendar-toggle" class="text-gray-400">▶</span>
            </div>
            <div id="calendar-content" style="display: none;" class="mt-4">
                <div class="flex justify-between items-center mb-4">
                    <button onclick="prevMonth()" class="px-3 py-1 rounded-lg bg-white/10 hover:bg-white/20 transition">← Prev</button>
                    <h3 id="calendar-month-label" class="text-lg font-semibold"></h3>
                    <button onclick="nextMonth()" class="px-3 py-1 rounded-lg bg-white/10 hover:bg-white/20 transition">Next →</button>
                </div>
                <div class="grid grid-cols-7 gap-1 mb-2">
                    <div class="text-center text-xs text-gray-500 py-1">Mon</div>
                    <div class="text-center text-xs text-gray-500 py-1">Tue</div>
                    <div class="text-center text-xs text-gray-500 py-1">Wed</div>
                    <div class="text-center text-xs text-gray-500 py-1">Thu</div>
                    <div class="text-center text-xs text-gray-500 py-1">Fri</div>
                    <div class="text-center text-xs text-gray-500 py-1">Sat</div>
                    <div class="text-center text-xs text-gray-500 py-1">Sun</div>
                </div>
                <div id="calendar-grid" class="grid grid-cols-7 gap-1"></div>
            </div>
        </div>

        <div class="glass rounded-2xl p-6 mb-6">
            <h2 class="text-xl font-semibold mb-4">Last 7 Days <span class="text-sm font-normal text-gray-400">({{.WeekLabel}})</span></h2>
            <div class="grid grid-cols-5 gap-4 mb-4">
                <div class="text-center">
                    <div class="text-3xl mb-1">🏃</div>
                    <div class="text-3xl font-bold {{.Cardio7dClass}}">{{.Cardio7d}}<span class="text-lg text-gray-400">/{{.CardioGoal}}</span></div>
                    <div class="text-gray-400 text-xs">Cardio</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">🏋️</div>
                    <div class="text-3xl font-bold {{.Strength7dClass}}">{{.Strength7d}}<span class="text-lg text-gray-400">/{{.StrengthGoal}}</span></div>
                    <div class="text-gray-400 text-xs">Strength</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">⏱️</div>
                    <div class="text-3xl font-bold text-green-400">{{.Hours7d}}</div>
                    <div class="text-gray-400 text-xs">Hours</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">⚖️</div>
                    <div class="text-3xl font-bold {{if .Change7dClass}}{{.Change7dClass}}{{else}}text-gray-400{{end}}">{{.Change7d}}</div>
                    <div class="text-gray-400 text-xs">kg</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">😴</div>
                    <div class="text-3xl font-bold text-purple-400">{{.RestDays7d}}</div>
                    <div class="text-gray-400 text-xs">Rest Days</div>
                </div>
            </div>
            <div class="border-t border-white/10 pt-4">
                <div class="flex justify-between items-center cursor-pointer" onclick="toggleSection('7d-activities')">
                    <span class="text-sm text-gray-400">Activities</span>
                    <span id="7d-activities-toggle" class="text-gray-400">▶</span>
                </div>
                <div id="7d-activities-content" class="space-y-3 mt-3" style="display: none;">
                    {{- range .WeekActivities}}
                    <div class="flex items-center justify-between p-3 {{.RowClass}} rounded-xl">
                        <div>
                            <div class="font-medium">{{.Name}}</div>
                            <div class="text-sm text-gray-400">{{.Date}}</div>
                        </div>
                        <div class="text-right">
                            <div class="text-blue-400">{{.Duration}}</div>
                            <div class="text-xs text-gray-500">{{.Type}}</div>
                        </div>
                    </div>
                    {{- end}}
                </div>
            </div>
        </div>

        {{- range .Months}}
        <div class="glass rounded-2xl p-6 mb-6">
            <div class="flex justify-between items-center cursor-pointer" onclick="toggleSection('{{.SectionID}}')">
                <h2 class="text-xl font-semibold">{{.Name}}</h2>
                <span id="{{.SectionID}}-toggle" class="text-gray-400">{{if .Open}}▼{{else}}▶{{end}}</span>
            </div>
            <div id="{{.SectionID}}-content" class="grid grid-cols-5 gap-4 mt-4" style="display: {{if .Open}}grid{{else}}none{{end}}">
                <div class="text-center">
                    <div class="text-3xl mb-1">🏃</div>
                    <div class="text-3xl font-bold {{.CardioClass}}">{{.Cardio}}<span class="text-lg text-gray-400">/{{.CardioGoal}}</span></div>
                    <div class="text-gray-400 text-xs">Cardio</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">🏋️</div>
                    <div class="text-3xl font-bold {{.StrengthClass}}">{{.Strength}}<span class="text-lg text-gray-400">/{{.StrengthGoal}}</span></div>
                    <div class="text-gray-400 text-xs">Strength</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">⏱️</div>
                    <div class="text-3xl font-bold text-green-400">{{.Hours}}</div>
                    <div class="text-gray-400 text-xs">Hours</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">⚖️</div>
                    <div class="text-3xl font-bold {{.WeightClass}}">{{.WeightChange}}</div>
                    <div class="text-gray-400 text-xs">kg</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">😴</div>
                    <div class="text-3xl font-bold text-purple-400">{{.RestDays}}</div>
                    <div class="text-gray-400 text-xs">Rest Days</div>
                </div>
            </div>
        </div>
        {{- end}}

        <div class="glass rounded-2xl p-6 mb-6">
            <div class="flex justify-between items-start mb-4">
                <div class="flex items-center gap-3">
                    <h2 class="text-xl font-semibold">Weight Progress</h2>
                    <button id="zoomToggle" onclick="toggleWeightZoom()" class="px-3 py-1 text-xs rounded-full bg-white/10 hover:bg-white/20 transition">🔍 Zoom Out</button>
                </div>
                <div class="flex gap-8 items-start">
                    <div class="text-right">
                        <div class="text-4xl font-bold {{if .AvgPerWeekClass}}{{.AvgPerWeekClass}}{{else}}text-gray-400{{end}}">{{.AvgPerWeek}} <span class="text-lg text-gray-400">kg/wk</span></div>
                        <div class="text-sm text-gray-400">avg loss</div>
                    </div>
                    <div class="text-right">
                        <div class="text-4xl font-bold {{if .Change30dClass}}{{.Change30dClass}}{{else}}text-gray-400{{end}}">{{.Change30d}} <span class="text-lg text-gray-400">kg</span></div>
                        <div class="text-sm text-gray-400">{{.Change30dWord}} (30d)</div>
                    </div>
                    <div class="text-right">
                        <div class="text-4xl font-bold text-emerald-400">{{.LatestWeight}} <span class="text-lg text-gray-400">kg</span></div>
                        <div class="text-sm text-gray-400">current</div>
                    </div>
                </div>
            </div>
            <canvas id="weightChart" height="100"></canvas>
            <div class="grid grid-cols-2 gap-4 mt-4">
                <div class="text-center p-3 bg-white/5 rounded-xl">
                    <div class="text-2xl font-bold text-emerald-400">{{.KgToGo}} kg</div>
                    <div class="text-sm text-gray-400">to go ({{.TargetWeight}} kg target)</div>
                </div>
                <div class="text-center p-3 bg-white/5 rounded-xl">
                    <div class="text-2xl font-bold text-blue-400">{{if .Projection}}{{.Projection}}{{else}}--{{end}}</div>
                    <div class="text-sm text-gray-400">projected target date</div>
                </div>
            </div>
            <div class="border-t border-white/10 pt-4 mt-4">
                <div class="flex justify-between items-center cursor-pointer" onclick="toggleSection('weighins')">
                    <span class="text-sm text-gray-400">Weigh-ins (10 most recent)</span>
                    <span id="weighins-toggle" class="text-gray-400">▶</span>
                </div>
                <div id="weighins-content" class="space-y-2 mt-3" style="display: none;">
                    {{- if .WeighIns}}
                    {{- range .WeighIns}}
                    <div class="flex items-center justify-between p-2 bg-white/5 rounded-lg">
                        <span class="text-gray-400 text-sm">{{.Date}}</span>
                        <div class="flex items-center gap-3">
                            {{- if .ChangeArrow}}
                            <span class="{{.ChangeClass}}">{{.ChangeArrow}} {{.ChangeValue}}</span>
                            {{- end}}
                            <span class="font-medium">{{.Weight}} kg</span>
                        </div>
                    </div>
                    {{- end}}
                    {{- else}}
                    <div class="text-gray-500 text-sm">No weigh-ins recorded</div>
                    {{- end}}
                </div>
            </div>
        </div>

        <div class="glass rounded-2xl p-6 mb-6">
            <div class="flex justify-between items-center cursor-pointer" onclick="toggleSection('ytd')">
                <h2 class="text-xl font-semibold">Year to Date</h2>
                <span id="ytd-toggle" class="text-gray-400">▼</span>
            </div>
            <div id="ytd-content" class="grid grid-cols-5 gap-4 mt-4">
                <div class="text-center">
                    <div class="text-3xl mb-1">🏃</div>
                    <div class="text-3xl font-bold text-blue-400">{{.YTD.Running}}</div>
                    <div class="text-gray-400 text-xs">Running</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">🚴</div>
                    <div class="text-3xl font-bold text-green-400">{{.YTD.Cycling}}</div>
                    <div class="text-gray-400 text-xs">Cycling</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">🥾</div>
                    <div class="text-3xl font-bold text-yellow-400">{{.YTD.WalkHike}}</div>
                    <div class="text-gray-400 text-xs">Walk/Hike</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">🎾</div>
                    <div class="text-3xl font-bold text-pink-400">{{.YTD.Racquet}}</div>
                    <div class="text-gray-400 text-xs">Tennis/Padel</div>
                </div>
                <div class="text-center">
                    <div class="text-3xl mb-1">🏋️</div>
                    <div class="text-3xl font-bold text-orange-400">{{.YTD.Strength}}</div>
                    <div class="text-gray-400 text-xs">Strength</div>
                </div>
            </div>
        </div>

        <div class="glass rounded-2xl p-6 mb-6">
            <div class="flex justify-between items-center cursor-pointer" onclick="toggleSection('activity-log')">
                <h2 class="text-xl font-semibold">Activity Log</h2>
                <span id="activity-log-toggle" class="text-gray-400">▶</span>
            </div>
            <div id="activity-log-content" class="space-y-3 mt-4" style="display: none;">
                {{- range .ActivityLog}}
                <div class="flex items-center justify-between p-3 {{.RowClass}} rounded-xl">
                    <div>
                        <div class="font-medium">{{.Name}}</div>
                        <div class="text-sm text-gray-400">{{.Date}}</div>
                    </div>
                    <div class="text-right">
                        <div class="text-blue-400">{{.Duration}}</div>
                        <div class="text-xs text-gray-500">{{.Type}}</div>
                    </div>
                </div>
                {{- end}}
            </div>
        </div>
    </div>

    <script>
        function toggleSection(id) {
            const content = document.getElementById(id + '-content');
            const toggle = document.getElementById(id + '-toggle');
            if (content.style.display === 'none') {
                content.style.display = (id === 'calendar' || id === 'activity-log' || id === '7d-activities' || id === 'weighins') ? 'block' : 'grid';
                toggle.textContent = '▼';
            } else {
                content.style.display = 'none';
                toggle.textContent = '▶';
            }
        }

        const exerciseDates = {{.ExerciseDatesJSON}};
        let currentCalendarDate = new Date();

        function renderCalendar() {
            const year = currentCalendarDate.getFullYear();
            const month = currentCalendarDate.getMonth();

            const monthNames = ['January', 'February', 'March', 'April', 'May', 'June',
                               'July', 'August', 'September', 'October', 'November', 'December'];
            const monthExerciseDays = exerciseDates.filter(d => {
                const date = new Date(d);
                return date.getFullYear() === year && date.getMonth() === month;
            }).length;
            document.getElementById('calendar-month-label').textContent = monthNames[month] + ' ' + year + ' (' + monthExerciseDays + ' days)';

            const firstDay = new Date(year, month, 1);
            const lastDay = new Date(year, month + 1, 0);
            const totalDays = lastDay.getDate();

            let startDay = firstDay.getDay() - 1;
            if (startDay < 0) startDay = 6;

            const today = new Date();
            const todayStr = today.toISOString().split('T')[0];

            let html = '';
            for (let i = 0; i < startDay; i++) {
                html += '<div class="aspect-square"></div>';
            }
            for (let day = 1; day <= totalDays; day++) {
                const dateStr = year + '-' + String(month + 1).padStart(2, '0') + '-' + String(day).padStart(2, '0');
                const hasExercise = exerciseDates.includes(dateStr);
                const isToday = dateStr === todayStr;
                const isFuture = new Date(dateStr) > today;

                let bgClass = 'bg-red-500/60';
                if (hasExercise) bgClass = 'bg-green-500';
                else if (isFuture) bgClass = 'bg-gray-800/30';

                const todayRing = isToday ? 'ring-2 ring-white' : '';
                const textColor = isFuture ? 'text-gray-600' : 'text-gray-300';

                html += '<div class="aspect-square ' + bgClass + ' ' + todayRing + ' rounded-lg flex items-center justify-center ' + textColor + ' text-sm">' + day + '</div>';
            }
            document.getElementById('calendar-grid').innerHTML = html;
        }

        function prevMonth() {
            currentCalendarDate.setMonth(currentCalendarDate.getMonth() - 1);
            renderCalendar();
        }

        function nextMonth() {
            currentCalendarDate.setMonth(currentCalendarDate.getMonth() + 1);
            renderCalendar();
        }

        renderCalendar();

        const weightData = {{.WeightJSON}};

        let weightChart;
        let isZoomedOut = false;

        function toggleWeightZoom() {
            isZoomedOut = !isZoomedOut;
            const btn = document.getElementById('zoomToggle');
            if (isZoomedOut) {
                weightChart.options.scales.y.min = 80;
                weightChart.options.scales.y.max = 100;
                btn.textContent = '🔍 Zoom In';
            } else {
                weightChart.options.scales.y.min = undefined;
                weightChart.options.scales.y.max = undefined;
                btn.textContent = '🔍 Zoom Out';
            }
            weightChart.update();
        }

        if (weightData.length > 0) {
            weightChart = new Chart(document.getElementById('weightChart'), {
                type: 'line',
                data: {
                    labels: weightData.map(d => {
                        const date = new Date(d.date);
                        return date.toLocaleDateString('en-GB', { day: 'numeric', month: 'short' });
                    }),
                    datasets: [
                        {
                            label: 'Weight (kg)',
                            data: weightData.map(d => d.weight),
                            borderColor: '#10b981',
                            backgroundColor: 'rgba(16, 185, 129, 0.1)',
                            fill: true,
                            tension: 0.3,
                            pointBackgroundColor: '#10b981',
                            pointRadius: 4
                        },
                        {
                            label: '10-day Avg',
                            data: weightData.map(d => d.rollingAvg),
                            borderColor: '#f97316',
                            borderWidth: 2,
                            borderDash: [5, 5],
                            fill: false,
                            tension: 0.3,
                            pointRadius: 0
                        }
                    ]
                },
                options: {
                    responsive: true,
                    plugins: {
                        legend: {
                            display: true,
                            position: 'top',
                            labels: { color: '#fff', usePointStyle: true, padding: 20 }
                        }
                    },
                    scales: {
                        y: {
                            ticks: { color: '#9ca3af' },
                            grid: { color: 'rgba(255,255,255,0.1)' }
                        },
                        x: {
                            ticks: { color: '#9ca3af' },
                            grid: { display: false }
                        }
                    }
                }
            });
        }
    </script>
</body>
</html>`
