package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// LookupOutput renders the output region of the lookup page: an optional
// toast followed by the explanation, if any. It is also served on its own as
// the htmx fragment for partial swaps.
func LookupOutput(loc Localizer, toast *ToastView, result *ResultView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if toast != nil {
			if err := Toast(*toast).Render(ctx, w); err != nil {
				return err
			}
		}
		if result != nil {
			if err := lookupResult(loc, *result).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func lookupResult(loc Localizer, result ResultView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<article class="lookup-result card">
<h2>%s</h2>
<p>%s</p>
</article>
`,
			html.EscapeString(T(loc, "lookup.result_heading", result.Term)),
			html.EscapeString(result.Explanation),
		)
		return err
	})
}
