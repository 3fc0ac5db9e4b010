// Package fixture serves a minimal flexbox page carrying overlay marker
// elements, so the harness has a local target to drive during tests and
// development runs.
package fixture

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Config controls the rendered page. Zero values fall back to the
// contract the balloons scenario expects: one marker inside a flex
// parent pushed up by -1rem.
type Config struct {
	MarkerClass   string
	Instances     int
	ParentMargin  string
	ParentDisplay string
	LateDelayMs   int
}

func (c Config) withDefaults() Config {
	if c.MarkerClass == "" {
		c.MarkerClass = "balloons"
	}
	if c.Instances == 0 {
		c.Instances = 1
	}
	if c.ParentMargin == "" {
		c.ParentMargin = "-1rem"
	}
	if c.ParentDisplay == "" {
		c.ParentDisplay = "flex"
	}
	if c.LateDelayMs == 0 {
		c.LateDelayMs = 500
	}
	return c
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>overlay fixture</title>
<style>
body { display: flex; flex-direction: column; margin: 0; }
.overlay-marker { position: fixed; top: 0; left: 0; width: 100vw; height: 100vh; pointer-events: none; }
</style>
</head>
<body>
<header>fixture header</header>
<div class="stage" style="display: {{.ParentDisplay}}; margin-bottom: {{.ParentMargin}}">
{{- if not .Late}}
{{- range .Seq}}
<div class="overlay-marker {{$.MarkerClass}}"></div>
{{- end}}
{{- end}}
</div>
<footer>fixture footer</footer>
{{- if .Late}}
<script>
setTimeout(function () {
	var stage = document.querySelector(".stage");
	for (var i = 0; i < {{.Instances}}; i++) {
		var el = document.createElement("div");
		el.className = "overlay-marker " + {{.MarkerClass}};
		stage.appendChild(el);
	}
}, {{.LateDelayMs}});
</script>
{{- end}}
</body>
</html>
`))

type pageData struct {
	Config
	Late bool
	Seq  []int
}

// Router serves the fixture page. "/" renders the markers in the initial
// document, "/late" attaches them from a script after LateDelayMs, and
// "/plain" renders the layout with no markers at all.
func Router(cfg Config) http.Handler {
	cfg = cfg.withDefaults()

	r := chi.NewRouter()
	r.Get("/", servePage(cfg, cfg.Instances, false))
	r.Get("/late", servePage(cfg, cfg.Instances, true))
	r.Get("/plain", servePage(cfg, 0, false))
	return r
}

func servePage(cfg Config, instances int, late bool) http.HandlerFunc {
	data := pageData{Config: cfg, Late: late, Seq: make([]int, instances)}
	data.Instances = instances
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.Execute(w, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
