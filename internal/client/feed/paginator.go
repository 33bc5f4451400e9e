// Package feed implements cursor-based incremental loading of the post feed.
package feed

import (
	"context"

	"github.com/amumal/amumal-cli/internal/client/models"
	"github.com/amumal/amumal-cli/internal/logging"
)

// State is the paginator's position in its lifecycle.
type State int

const (
	// StateIdle: ready to fetch the next page.
	StateIdle State = iota
	// StateLoading: a fetch is in flight; further requests are suppressed.
	StateLoading
	// StateExhausted: the server reported no further pages, or a fetch
	// failed. Terminal; all further requests are no-ops.
	StateExhausted
)

// Status texts surfaced beneath the feed.
const (
	statusLoading   = "불러오는 중..."
	statusMore      = "더 불러오려면 more 를 입력하세요."
	statusNoMore    = "더 이상 게시글이 없습니다."
	statusLoadError = "게시글을 불러오지 못했습니다."
)

// Fetcher fetches one feed page after the given cursor.
type Fetcher interface {
	ListPosts(ctx context.Context, cursorID int64, count int) (*models.FeedPage, error)
}

// Paginator advances through the feed one page at a time. The state guard in
// RequestNext is what prevents duplicate in-flight requests.
type Paginator struct {
	fetch    Fetcher
	log      logging.Logger
	pageSize int

	cursorID int64
	state    State
	items    []models.PostSummary
	status   string
}

func NewPaginator(fetch Fetcher, pageSize int, log logging.Logger) *Paginator {
	return &Paginator{fetch: fetch, pageSize: pageSize, log: log}
}

// State returns the current lifecycle state.
func (p *Paginator) State() State { return p.state }

// Items returns every post loaded so far, in server order.
func (p *Paginator) Items() []models.PostSummary { return p.items }

// Status returns the text shown beneath the feed.
func (p *Paginator) Status() string { return p.status }

// HasMore reports whether another page may exist.
func (p *Paginator) HasMore() bool { return p.state != StateExhausted }

// RequestNext fetches and appends the next page. It is a no-op while a fetch
// is in flight or once the feed is exhausted. A failed or malformed fetch is
// terminal: the paginator goes straight to Exhausted with an error status,
// and retry is left to the user starting over.
func (p *Paginator) RequestNext(ctx context.Context) []models.PostSummary {
	if p.state != StateIdle {
		return nil
	}
	p.state = StateLoading
	p.status = statusLoading

	page, err := p.fetch.ListPosts(ctx, p.cursorID, p.pageSize)
	if err != nil {
		p.log.Error(ctx, "feed page load failed", "cursor", p.cursorID, "error", err)
		p.state = StateExhausted
		p.status = statusLoadError
		return nil
	}

	p.items = append(p.items, page.PostList...)

	if page.NextCursor != nil {
		p.cursorID = *page.NextCursor
		p.state = StateIdle
		p.status = statusMore
	} else {
		p.state = StateExhausted
		p.status = statusNoMore
	}

	return page.PostList
}
