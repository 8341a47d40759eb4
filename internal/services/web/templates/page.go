package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/oakleafmed/medterm/internal/services/web/routepath"
)

// LookupPage renders the full lookup document: header, search form, example
// chips, and the output region holding any toast and result.
func LookupPage(params LookupPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(params.Lang)
		if lang == "" {
			lang = "en"
		}
		title := T(params.Loc, "title.lookup", params.AppName)
		metaDesc := T(params.Loc, "meta.description")

		if _, err := fmt.Fprintf(w, `<!doctype html>
<html lang="%s" data-theme="light">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s</title>
<meta name="description" content="%s"/>
<link rel="stylesheet" href="%sstyles.css"/>
<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>
<script src="%slookup.js" defer></script>
</head>
<body>
<main class="lookup-main">
`,
			html.EscapeString(lang),
			html.EscapeString(title),
			html.EscapeString(metaDesc),
			routepath.StaticPrefix,
			routepath.StaticPrefix,
		); err != nil {
			return err
		}

		if err := pageHeader(params.Loc).Render(ctx, w); err != nil {
			return err
		}
		if err := lookupForm(params.Loc, params.Term).Render(ctx, w); err != nil {
			return err
		}
		if err := ExampleChips(params.Loc, params.Examples).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<div id="lookup-output">`); err != nil {
			return err
		}
		if err := LookupOutput(params.Loc, params.Toast, params.Result).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</div>\n</main>\n</body>\n</html>\n"); err != nil {
			return err
		}
		return nil
	})
}

func pageHeader(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<header class="lookup-header">
<h1>%s</h1>
<p class="tagline">%s</p>
</header>
`,
			html.EscapeString(T(loc, "lookup.heading")),
			html.EscapeString(T(loc, "lookup.tagline")),
		)
		return err
	})
}

func lookupForm(loc Localizer, term string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		// hx-sync drops overlapping submissions so at most one request is in
		// flight; hx-disabled-elt and the indicator express the loading state.
		_, err := fmt.Fprintf(w, `<form id="lookup-form" class="lookup-form" method="post" action="%s"
 hx-post="%s" hx-target="#lookup-output" hx-swap="innerHTML"
 hx-sync="this:drop" hx-indicator="#lookup-loading" hx-disabled-elt="#lookup-input, #lookup-submit">
<input id="lookup-input" class="input input-bordered" type="text" name="term" value="%s" placeholder="%s" autocomplete="off"/>
<button id="lookup-submit" class="btn btn-primary" type="submit">
<span class="label">%s</span>
<span id="lookup-loading" class="htmx-indicator loading loading-ring loading-md"></span>
</button>
</form>
`,
			routepath.Lookup,
			routepath.Lookup,
			html.EscapeString(term),
			html.EscapeString(T(loc, "lookup.placeholder")),
			html.EscapeString(T(loc, "lookup.submit")),
		)
		return err
	})
}

// ExampleChips renders the quick-lookup shortcut buttons.
func ExampleChips(loc Localizer, examples []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(examples) == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(w, `<section class="lookup-examples">
<h2>%s</h2>
<ul class="example-list">
`, html.EscapeString(T(loc, "lookup.examples_heading"))); err != nil {
			return err
		}
		for _, example := range examples {
			escaped := html.EscapeString(example)
			if _, err := fmt.Fprintf(w,
				`<li><button type="button" class="badge badge-outline example-chip" data-term="%s">%s</button></li>
`, escaped, escaped); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>\n</section>\n")
		return err
	})
}
