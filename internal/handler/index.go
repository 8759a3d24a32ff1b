package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/noctus-rates-api/internal/service"
)

type IndexEntry struct {
	Path        string
	Description string
}

type IndexHandler struct {
	entries []IndexEntry
	tmpl    *template.Template
}

const ConvertExamplePath = "/convertir?cantidad=100&origen=USD&destino=COP"

func NewIndexHandler(datasets []service.Dataset) *IndexHandler {
	entries := make([]IndexEntry, 0, len(datasets)+1)
	for _, ds := range datasets {
		entries = append(entries, IndexEntry{Path: ds.Path, Description: ds.Description})
	}
	entries = append(entries, IndexEntry{Path: ConvertExamplePath, Description: "Currency conversion calculator"})

	return &IndexHandler{
		entries: entries,
		tmpl:    template.Must(template.New("index").Parse(indexHTML)),
	}
}

func (h *IndexHandler) Index(c *gin.Context) {
	var buf bytes.Buffer
	err := h.tmpl.Execute(&buf, gin.H{
		"Host":      c.Request.Host,
		"Endpoints": h.entries,
	})
	if err != nil {
		log.Error().Err(err).Msg("render index")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render index"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

const indexHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>NOCTUS API</title>
  <style>
    body { font-family: Arial, sans-serif; background-color: #0d1117; color: #c9d1d9; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; }
    .container { background-color: #161b22; padding: 30px; border-radius: 12px; width: 90%; max-width: 600px; }
    h1 { color: #58a6ff; border-bottom: 2px solid #30363d; padding-bottom: 10px; margin-top: 0; }
    ul { list-style: none; padding: 0; }
    li { margin-bottom: 15px; background-color: #21262d; padding: 15px; border-radius: 8px; }
    li a { text-decoration: none; color: #58a6ff; font-weight: bold; display: block; margin-bottom: 5px; word-wrap: break-word; }
    li p { margin: 0; color: #8b949e; font-size: 0.9em; }
  </style>
</head>
<body>
  <div class="container">
    <h1>NOCTUS API</h1>
    <p>Spreadsheet-backed rate endpoints:</p>
    <ul>
      {{- range .Endpoints }}
      <li>
        <a href="{{ .Path }}">{{ $.Host }}{{ .Path }}</a>
        <p>{{ .Description }}</p>
      </li>
      {{- end }}
    </ul>
  </div>
</body>
</html>`
