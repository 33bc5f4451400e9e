package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/amumal/amumal-cli/internal/client/api"
	"github.com/amumal/amumal-cli/internal/client/config"
	"github.com/amumal/amumal-cli/internal/client/feed"
	"github.com/amumal/amumal-cli/internal/client/models"
	"github.com/amumal/amumal-cli/internal/client/session"
	"github.com/amumal/amumal-cli/internal/client/storage"
	"github.com/amumal/amumal-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// AccountAPI is the account surface of the backend client used by the app.
type AccountAPI interface {
	Login(ctx context.Context, email, password string) (*models.Profile, error)
	Logout(ctx context.Context, userID int64) error
	Signup(ctx context.Context, req api.SignupRequest) error
	CheckEmail(ctx context.Context, email string) api.CheckStatus
	CheckNickname(ctx context.Context, nickname string) api.CheckStatus
	UpdateProfile(ctx context.Context, userID int64, nickname string, profileImage *string) (*models.ProfileUpdate, error)
	UpdatePassword(ctx context.Context, userID int64, current, next string) error
	DeleteAccount(ctx context.Context, userID int64) error
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
}

// PostAPI is the post and comment surface of the backend client.
type PostAPI interface {
	ListPosts(ctx context.Context, cursorID int64, count int) (*models.FeedPage, error)
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	CreatePost(ctx context.Context, req api.PostRequest) error
	UpdatePost(ctx context.Context, postID int64, req api.PostRequest) error
	DeletePost(ctx context.Context, postID int64) error
	Like(ctx context.Context, postID, userID int64) (int64, error)
	Unlike(ctx context.Context, likeID int64) error
	CreateComment(ctx context.Context, postID, userID int64, content string) error
	UpdateComment(ctx context.Context, commentID int64, content string) error
	DeleteComment(ctx context.Context, commentID int64) error
}

// SessionStore persists the logged-in user's record between runs.
type SessionStore interface {
	Save(ctx context.Context, profile models.Profile, email string) error
	Put(ctx context.Context, sess *models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

// App wires the REPL to the backend client and local storage.
type App struct {
	config   *config.Config
	accounts AccountAPI
	posts    PostAPI
	sessions SessionStore
	log      logging.Logger

	db      *sql.DB
	session *models.Session
	feed    *feed.Paginator
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.StorageDSN)
	if err != nil {
		log.Error(ctx, "initializing local storage", "error", err)
		return nil, err
	}

	apiClient, err := api.New(c.BaseURL, c.RequestTimeout, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:   c,
		accounts: apiClient,
		posts:    apiClient,
		sessions: session.NewStore(storage.NewKV(db)),
		log:      log,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores any saved session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	sess, err := a.sessions.Load(ctx)
	if err != nil {
		a.log.Error(ctx, "loading saved session", "error", err)
	}
	a.session = sess

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}
