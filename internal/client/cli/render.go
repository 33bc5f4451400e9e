package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/amumal/amumal-cli/internal/client/models"
)

// FormatCount renders a counter the way the feed cards do: exact below a
// thousand, then bucketed into k-units with hard caps at 10k and 100k.
func FormatCount(v int64) string {
	switch {
	case v >= 100000:
		return "100k"
	case v >= 10000:
		return "10k"
	case v >= 1000:
		return strconv.FormatInt((v+500)/1000, 10) + "k"
	default:
		return strconv.FormatInt(v, 10)
	}
}

// TruncateTitle caps a title at 26 runes for list display.
func TruncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= 26 {
		return title
	}
	return string(r[:26])
}

func renderSummary(w io.Writer, p models.PostSummary) {
	fmt.Fprintf(w, "[%d] %s\n", p.PostID.Int64(), TruncateTitle(p.Title))
	fmt.Fprintf(w, "    likes %s  comments %s  views %s  %s  by %s\n",
		FormatCount(p.Likes.Int64()),
		FormatCount(p.CommentsCount.Int64()),
		FormatCount(p.Views.Int64()),
		p.CreatedAt,
		p.AuthorNickname,
	)
}

func renderPost(w io.Writer, p *models.Post, likeCount, totalComments int64, liked bool) {
	fmt.Fprintf(w, "\n%s\n", p.Title)
	fmt.Fprintf(w, "by %s  %s\n", p.AuthorNickname, p.CreatedAt)
	if p.ImageURL != "" {
		fmt.Fprintf(w, "image: %s\n", p.ImageURL)
	}
	fmt.Fprintf(w, "\n%s\n\n", p.Content)

	likeMark := " "
	if liked {
		likeMark = "*"
	}
	fmt.Fprintf(w, "[%s] likes %s  views %s  comments %s\n",
		likeMark,
		FormatCount(likeCount),
		FormatCount(p.Views.Int64()),
		FormatCount(totalComments),
	)

	for _, cm := range p.Comments {
		fmt.Fprintf(w, "  (%d) %s  %s\n      %s\n",
			cm.CommentID.Int64(), cm.AuthorNickname, cm.CreatedAt, cm.Content)
	}
}
