package cli

import (
	"context"
	"fmt"

	"github.com/amumal/amumal-cli/internal/client/feed"
)

// showFeed starts the feed from the top and shows the first page.
func (a *App) showFeed(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	a.feed = feed.NewPaginator(a.posts, a.config.PageSize, a.log)
	a.loadFeedPage(ctx)
}

// moreFeed loads the next page of the current feed.
func (a *App) moreFeed(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	if a.feed == nil {
		a.showFeed(ctx)
		return
	}
	a.loadFeedPage(ctx)
}

func (a *App) loadFeedPage(ctx context.Context) {
	added := a.feed.RequestNext(ctx)
	for _, p := range added {
		renderSummary(a.out, p)
	}
	fmt.Fprintln(a.out, a.feed.Status())
}
