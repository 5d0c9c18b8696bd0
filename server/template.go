package server

import (
	"html/template"
	"sync"
)

const dashboardTemplateStr = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>OHCR Dashboard{{if .SessionID}} - {{.SessionID}}{{end}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5}
nav{background:#161b22;border-bottom:1px solid #30363d;padding:8px 16px}
nav .brand{color:#f0f6fc;font-weight:700;font-size:15px}
main{padding:16px}
h1{font-size:16px;font-weight:700;color:#f0f6fc;margin-bottom:12px}
h2{font-size:13px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
.mono{font-family:monospace;font-size:11px;color:#79c0ff}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.card{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px 16px;min-width:140px}
.card .val{font-size:22px;font-weight:700;color:#f0f6fc}
.card .lbl{font-size:11px;color:#8b949e;margin-top:2px}
.section{background:#161b22;border:1px solid #30363d;border-radius:6px;margin-bottom:16px;padding:12px 16px}
.timeline{position:relative;height:36px;background:#21262d;border-radius:4px;overflow:hidden}
.seg{position:absolute;height:100%;border-radius:2px;opacity:.9}
.seg:hover{opacity:1}
.legend{display:flex;gap:20px;flex-wrap:wrap;margin-top:10px}
.legend .dot{display:inline-block;width:10px;height:10px;border-radius:5px;margin-right:6px}
.empty{padding:20px;text-align:center;color:#8b949e}
.feedback{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px 16px;margin-bottom:12px}
.feedback .title{font-weight:700;color:#f0f6fc;margin-bottom:4px}
.feedback .why{color:#8b949e;margin-bottom:8px}
.feedback li{margin-left:18px}
.affirm{color:#56d364}
</style>
</head>
<body>
<nav><span class="brand">ohcr-dashboard</span></nav>
<main>
<h1>Session <span class="mono">{{.SessionID}}</span></h1>

{{if .Metrics}}
<h2>Metrics</h2>
<div class="cards">
  {{range .Metrics}}
  <div class="card">
    <div class="val">{{.Value}}</div>
    <div class="lbl">{{.Label}}</div>
  </div>
  {{end}}
</div>
{{end}}

<h2>Discourse Timeline</h2>
<div class="section">
  {{if .Timeline.Rendered}}
  <div class="timeline">
    {{range .Timeline.Segments}}
    <div class="seg" title="{{.Tooltip}}"
         style="background:{{.Color}};left:{{printf "%.3f" .LeftPercent}}%;width:{{printf "%.3f" .WidthPercent}}%"></div>
    {{end}}
  </div>
  <div class="legend">
    {{range .Timeline.Legend}}
    <div><span class="dot" style="background:{{.Color}}"></span>{{.Label}}</div>
    {{end}}
  </div>
  {{else if .Timeline.NoSequences}}
  <div class="empty">No OHCR sequences detected in this session.</div>
  {{else}}
  <div class="empty">No timeline data for this session.</div>
  {{end}}
</div>

<h2>Coaching</h2>
{{if .Feedback}}
  {{range .Feedback}}
  <div class="feedback">
    <div class="title">{{.Title}}</div>
    <div class="why">{{.Why}}</div>
    <ul>
      {{range .How}}<li>{{.}}</li>{{end}}
    </ul>
  </div>
  {{end}}
{{else}}
  <div class="section affirm">{{.Affirmation}}</div>
{{end}}
</main>
</body>
</html>`

var (
	tmplDashboard     *template.Template
	tmplDashboardOnce sync.Once
)

func getDashboardTemplate() *template.Template {
	tmplDashboardOnce.Do(func() {
		tmplDashboard = template.Must(
			template.New("dashboard").Parse(dashboardTemplateStr))
	})
	return tmplDashboard
}
