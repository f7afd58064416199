package report

import (
	"encoding/json"
	"fmt"
	"strconv"

	"boxdstats/internal/config"
	"boxdstats/internal/stats"
)

// namedColorscales expands colour scales that Plotly.js does not ship by name.
var namedColorscales = map[string][]string{
	"Teal": {
		"rgb(209, 238, 234)", "rgb(168, 219, 217)", "rgb(133, 196, 201)",
		"rgb(104, 171, 184)", "rgb(79, 144, 166)", "rgb(59, 115, 143)",
		"rgb(42, 86, 116)",
	},
}

type plotTitle struct {
	Text string `json:"text"`
}

type axis struct {
	Title      *plotTitle `json:"title,omitempty"`
	Automargin bool       `json:"automargin,omitempty"`
	Type       string     `json:"type,omitempty"`
}

type margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type layout struct {
	Title        plotTitle `json:"title"`
	XAxis        *axis     `json:"xaxis,omitempty"`
	YAxis        *axis     `json:"yaxis,omitempty"`
	Margin       margin    `json:"margin"`
	PlotBGColor  string    `json:"plot_bgcolor"`
	PaperBGColor string    `json:"paper_bgcolor"`
	ShowLegend   *bool     `json:"showlegend,omitempty"`
}

type line struct {
	Shape string `json:"shape,omitempty"`
	Color string `json:"color,omitempty"`
}

type marker struct {
	Color      any `json:"color,omitempty"`
	Colors     any `json:"colors,omitempty"`
	Colorscale any `json:"colorscale,omitempty"`
}

type trace struct {
	Type         string   `json:"type"`
	Mode         string   `json:"mode,omitempty"`
	Orientation  string   `json:"orientation,omitempty"`
	X            any      `json:"x,omitempty"`
	Y            any      `json:"y,omitempty"`
	Labels       []string `json:"labels,omitempty"`
	Values       []int    `json:"values,omitempty"`
	Text         []string `json:"text,omitempty"`
	TextPosition string   `json:"textposition,omitempty"`
	TextInfo     string   `json:"textinfo,omitempty"`
	Line         *line    `json:"line,omitempty"`
	Marker       *marker  `json:"marker,omitempty"`
	Sort         *bool    `json:"sort,omitempty"`
}

type figure struct {
	Data   []trace `json:"data"`
	Layout layout  `json:"layout"`
}

func (f figure) encode() (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encode chart %q: %w", f.Layout.Title.Text, err)
	}
	return string(data), nil
}

func baseLayout(title string, theme config.Theme) layout {
	return layout{
		Title:        plotTitle{Text: title},
		Margin:       margin{L: 40, R: 40, T: 50, B: 50},
		PlotBGColor:  theme.Card,
		PaperBGColor: theme.Card,
	}
}

func colorscale(name string) any {
	if colours, ok := namedColorscales[name]; ok {
		scale := make([][2]any, len(colours))
		for i, c := range colours {
			scale[i] = [2]any{float64(i) / float64(len(colours)-1), c}
		}
		return scale
	}
	return name
}

// lineChart draws an ascending time series.
func lineChart(title string, points []stats.Point, theme config.Theme) figure {
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i] = p.Year
		ys[i] = p.Count
	}
	l := baseLayout(title, theme)
	l.XAxis = &axis{Title: &plotTitle{Text: "Year/Decade"}, Type: "linear"}
	l.YAxis = &axis{Title: &plotTitle{Text: "Number of Films"}}
	return figure{
		Data: []trace{{
			Type: "scatter",
			Mode: "lines+markers",
			X:    xs,
			Y:    ys,
			Line: &line{Shape: "spline", Color: theme.LineColor},
		}},
		Layout: l,
	}
}

// countBarChart draws a horizontal ranking with the highest count on top.
func countBarChart(title string, counts []stats.Count, theme config.Theme) figure {
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	text := make([]string, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		values[i] = float64(c.Count)
		text[i] = strconv.Itoa(c.Count)
	}
	return horizontalBar(title, labels, values, text, theme)
}

// ratioBarChart draws a horizontal ranking of per-category values.
func ratioBarChart(title string, ratios []stats.Ratio, theme config.Theme) figure {
	labels := make([]string, len(ratios))
	values := make([]float64, len(ratios))
	text := make([]string, len(ratios))
	for i, r := range ratios {
		labels[i] = r.Label
		values[i] = r.Value
		text[i] = strconv.FormatFloat(r.Value, 'f', 2, 64)
	}
	return horizontalBar(title, labels, values, text, theme)
}

func horizontalBar(title string, labels []string, values []float64, text []string, theme config.Theme) figure {
	// Plotly draws the first category at the bottom; reverse so rank 1 is on top.
	n := len(labels)
	rl := make([]string, n)
	rv := make([]float64, n)
	rt := make([]string, n)
	for i := range labels {
		rl[n-1-i] = labels[i]
		rv[n-1-i] = values[i]
		rt[n-1-i] = text[i]
	}
	l := baseLayout(title, theme)
	l.YAxis = &axis{Automargin: true, Type: "category"}
	return figure{
		Data: []trace{{
			Type:         "bar",
			Orientation:  "h",
			X:            rv,
			Y:            rl,
			Text:         rt,
			TextPosition: "outside",
			Marker:       &marker{Color: rv, Colorscale: colorscale(theme.BarColorscale)},
		}},
		Layout: l,
	}
}

// pieChart draws the share of each category.
func pieChart(title string, counts []stats.Count, theme config.Theme) figure {
	labels := make([]string, len(counts))
	values := make([]int, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		values[i] = c.Count
	}
	keepOrder := false
	var colours any
	if len(theme.PieColors) > 0 {
		colours = theme.PieColors
	}
	return figure{
		Data: []trace{{
			Type:         "pie",
			Labels:       labels,
			Values:       values,
			TextInfo:     "percent+label",
			TextPosition: "inside",
			Marker:       &marker{Colors: colours},
			Sort:         &keepOrder,
		}},
		Layout: baseLayout(title, theme),
	}
}
