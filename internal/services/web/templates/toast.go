package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Toast renders a dismissable notice. Kind selects the alert styling.
func Toast(view ToastView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "alert alert-warning"
		if view.Kind == "error" {
			class = "alert alert-error"
		}
		_, err := fmt.Fprintf(w, `<div class="toast-notice %s" role="alert">
<span>%s</span>
<button type="button" class="toast-dismiss" aria-label="Dismiss">&times;</button>
</div>
`,
			class,
			html.EscapeString(view.Message),
		)
		return err
	})
}
