package tftespi

import (
	"io"
	"text/template"

	"cyd-go/board/cyd"
)

var sectionTitles = map[Section]string{
	SectionDriver: "Section 1. Call up the right driver file and any options for it",
	SectionPins:   "Section 2. Define the pins that are used to interface with the display here",
	SectionFonts:  "Section 3. Define the fonts that are to be used here",
	SectionOther:  "Section 4. Other options",
}

type headerSection struct {
	Title     string
	Defines   []Macro
	Undefs    []string
	Overrides []Macro
}

type headerData struct {
	TwoUSB   bool
	Sections []headerSection
}

var headerTmpl = template.Must(template.New("User_Setup.h").Parse(`{{define "macro"}}#define {{.Name}}{{if .Value}} {{.Value}}{{end}}{{if .Comment}}  // {{.Comment}}{{end}}
{{end}}//                            USER DEFINED SETTINGS
//   Generated by cydgen for the ESP32-2432S028R (CYD).
//   Set driver type, fonts to be loaded, pins used and SPI control method etc.

// false: Panel driver: ILI9341 (micro-USB x 1 type)
// true : Panel driver: ST7789  (micro-USB x 1 + USB-C x 1 type)
#define DISPLAY_CYD_2USB  {{.TwoUSB}}
{{range .Sections}}{{if .Title}}
// ##################################################################################
//
// {{.Title}}
//
// ##################################################################################
{{end}}
{{range .Defines}}{{template "macro" .}}{{end}}{{if or .Undefs .Overrides}}
#if DISPLAY_CYD_2USB
{{range .Undefs}}#undef  {{.}}
{{end}}{{range .Overrides}}{{template "macro" .}}{{end}}#endif
{{end}}{{end}}`))

// WriteHeader renders a User_Setup.h with DISPLAY_CYD_2USB set for v. The
// ILI9341 table is written as the default; every macro the ST7789 table
// changes or drops is #undef'd inside #if DISPLAY_CYD_2USB before any
// replacement is defined, so no macro is ever defined twice.
func WriteHeader(w io.Writer, v cyd.Variant) error {
	base, alt := Table(cyd.ILI9341OneUSB), Table(cyd.ST7789TwoUSB)
	data := headerData{TwoUSB: v.TwoUSB()}
	for s := SectionInfo; s <= SectionOther; s++ {
		hs := headerSection{Title: sectionTitles[s]}
		for _, m := range base {
			if m.Section != s {
				continue
			}
			hs.Defines = append(hs.Defines, m)
			if o, ok := Lookup(alt, m.Name); !ok || o.Value != m.Value {
				hs.Undefs = append(hs.Undefs, m.Name)
			}
		}
		for _, m := range alt {
			if m.Section != s {
				continue
			}
			if o, ok := Lookup(base, m.Name); !ok || o.Value != m.Value {
				hs.Overrides = append(hs.Overrides, m)
			}
		}
		data.Sections = append(data.Sections, hs)
	}
	return headerTmpl.Execute(w, data)
}
