package render

import (
	"bytes"
	"html/template"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Color Scale</title>
    <style>
        body { font-family: sans-serif; display: flex; justify-content: center; align-items: center; min-height: 100vh; background-color: #f0f0f0; margin: 0; }
        .container { display: flex; flex-direction: column; border: 1px solid #ccc; box-shadow: 0 4px 8px rgba(0,0,0,0.1); }
        .color-band { padding: 20px; min-height: 80px; display: flex; align-items: center; justify-content: center; }
        .color-info { text-align: center; }
        .color-info p { margin: 2px 0; }
    </style>
</head>
<body>
    <div class="container">
{{- range . }}
        <div class="color-band" style="background-color: #{{ .Hex }}; color: {{ .TextColor }};">
            <div class="color-info">
                <p>Step {{ .Step }} &mdash; {{ .Label }}</p>
                <p>LAB: {{ printf "%.2f, %.2f, %.2f" .Lab.L .Lab.A .Lab.B }}</p>
                <p>HEX: #{{ .Hex }}</p>
{{- if .Match }}
                <p>Closest Match: {{ .Match }}</p>
{{- end }}
            </div>
        </div>
{{- end }}
    </div>
</body>
</html>
`))

// HTML renders the bands as a static swatch page.
func HTML(bands []Band) ([]byte, error) {
	var buffer bytes.Buffer
	if err := pageTemplate.Execute(&buffer, bands); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
