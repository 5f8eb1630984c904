package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-print"
	"github.com/michal-p/bloglist"
	"github.com/michal-p/bloglist/config"
	"github.com/michal-p/bloglist/server"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// glogAdapter bridges the structured logger to the printf style logger the
// auth components expect.
type glogAdapter struct {
	lgr glog.Logger
}

func (a glogAdapter) Debug(format string, args ...any) { a.lgr.Debug(fmt.Sprintf(format, args...)) }
func (a glogAdapter) Info(format string, args ...any)  { a.lgr.Info(fmt.Sprintf(format, args...)) }
func (a glogAdapter) Error(format string, args ...any) { a.lgr.Error(fmt.Sprintf(format, args...)) }

func main() {
	base := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("bloglist"),
		glog.WithAddSource(false),
	)
	lgr := base.GetLogger("main")

	cfg, err := config.Load()
	if err != nil {
		lgr.Error("configuration error", "error", err)
		os.Exit(1)
	}

	fmt.Println(print.MaybeHighlightJSON(cfg))

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DSN)
	if err != nil {
		lgr.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	if err := bloglist.CreateSchema(ctx, db); err != nil {
		lgr.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	repo := bloglist.NewRepositoryManager(db)
	repo.MustValidate()

	provider := bloglist.NewUserProvider(repo.Users()).
		WithLogger(glogAdapter{base.GetLogger("auth:prv")})

	auther := bloglist.NewAuthenticator(provider, cfg).
		WithLogger(glogAdapter{base.GetLogger("auth")})

	srv := server.New(cfg, repo, auther,
		server.WithLogger(glogAdapter{base.GetLogger("http")}),
	)

	go func() {
		lgr.Info("listening", "addr", cfg.Addr())
		if err := srv.Listen(cfg.Addr()); err != nil {
			lgr.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	WaitExitSignal()

	lgr.Info("shutting down")
	_ = srv.Shutdown()
	_ = db.Close()
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
