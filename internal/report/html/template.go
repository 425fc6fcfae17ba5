package html

// MetricsReportTemplate renders a package-metrics table and cycle list.
const MetricsReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Package Dependency Report</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
        }

        .summary {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 15px;
            margin-top: 15px;
        }

        .stat-card {
            background: #f8f9fa;
            padding: 15px;
            border-radius: 6px;
            border-left: 4px solid #667eea;
        }

        .stat-card .label {
            font-size: 0.9em;
            color: #6c757d;
            margin-bottom: 5px;
        }

        .stat-card .value {
            font-size: 1.8em;
            font-weight: 600;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            background: white;
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
            margin-bottom: 30px;
        }

        th, td {
            padding: 10px 14px;
            text-align: left;
            border-bottom: 1px solid #e9ecef;
        }

        th {
            background: #f8f9fa;
            font-weight: 600;
            color: #495057;
        }

        tr.cyclic {
            background: #fdecea;
        }

        .d-good { color: #2e7d32; font-weight: 600; }
        .d-warn { color: #ef6c00; font-weight: 600; }
        .d-bad  { color: #c62828; font-weight: 600; }

        .cycles ol {
            margin-left: 20px;
        }

        .cycles li {
            margin-bottom: 6px;
            font-family: monospace;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Package Dependency Report</h1>
        </header>

        <div class="summary">
            <h2>Overview</h2>
            <div class="stats">
                <div class="stat-card">
                    <div class="label">Total Packages</div>
                    <div class="value">{{.TotalPackages}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Packages in a Cycle</div>
                    <div class="value">{{.CyclicCount}}</div>
                </div>
            </div>
        </div>

        <table>
            <thead>
                <tr>
                    <th>Package</th>
                    <th>Classes</th>
                    <th>Ca</th>
                    <th>Ce</th>
                    <th>A</th>
                    <th>I</th>
                    <th>D</th>
                </tr>
            </thead>
            <tbody>
                {{range .Packages}}
                <tr{{if .ContainsCycle}} class="cyclic"{{end}}>
                    <td>{{.Name}}</td>
                    <td>{{.ClassCount}}</td>
                    <td>{{.Ca}}</td>
                    <td>{{.Ce}}</td>
                    <td>{{pct .A}}</td>
                    <td>{{pct .I}}</td>
                    <td class="{{distanceClass .D}}">{{pct .D}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>

        <div class="summary cycles">
            <h2>Dependency Cycles</h2>
            {{if .Cycles}}
            <ol>
                {{range .Cycles}}
                <li>{{range $i, $name := .}}{{if $i}} &rarr; {{end}}{{$name}}{{end}}</li>
                {{end}}
            </ol>
            {{else}}
            <p>No cycles detected.</p>
            {{end}}
        </div>
    </div>
</body>
</html>
`
