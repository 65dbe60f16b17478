package todo

import (
	"fmt"

	"src.weft.dev/pkg/weft"
	"src.weft.dev/pkg/weft/dom"
)

// View renders the application. Event handlers receive the *App as the app
// argument, mutate it, and request a rebuild; a failed store operation is
// surfaced as an error action.
func View(a *App) weft.View {
	items := a.Visible()
	lis := make([]weft.Seq, len(items))
	for i, item := range items {
		lis[i] = weft.One(itemView(item))
	}
	var note weft.Seq
	if a.Filter != All {
		note = weft.One(filterNote(a.Filter))
	}
	return dom.El("main",
		weft.One(weft.Memo(a.Stats(), headerView)),
		weft.One(dom.El("ul", weft.List(lis...)).Attr("class", "items")),
		weft.Option(note),
		weft.One(footerView(a.Stats())),
	)
}

func itemView(item Item) weft.View {
	class := "active"
	if item.Done {
		class = "done"
	}
	return dom.El("li", weft.One(dom.T(item.Text))).
		Attr("class", class).
		Attr("data-id", item.ID).
		On("toggle", func(data, app any) any {
			if err := app.(*App).Toggle(item.ID); err != nil {
				return err
			}
			return dom.Rebuild
		}).
		On("delete", func(data, app any) any {
			if err := app.(*App).Del(item.ID); err != nil {
				return err
			}
			return dom.Rebuild
		})
}

func headerView(s Stats) weft.View {
	return dom.El("header",
		weft.One(dom.El("h1", weft.One(dom.T("todo")))),
		weft.One(dom.El("p",
			weft.One(dom.T(fmt.Sprintf("%d done / %d total", s.Done, s.Total)))).
			Attr("class", "stats")),
	)
}

func filterNote(f Filter) weft.View {
	return dom.El("p",
		weft.One(dom.T(fmt.Sprintf("showing %s items", f)))).
		Attr("class", "filter-note")
}

func footerView(s Stats) weft.View {
	if s.Total > 0 && s.Done == s.Total {
		return weft.OneOfB(dom.El("footer",
			weft.One(dom.T("all done"))).Attr("class", "all-done"))
	}
	return weft.OneOfA(dom.El("footer",
		weft.One(dom.T(fmt.Sprintf("%d left", s.Total-s.Done)))))
}
