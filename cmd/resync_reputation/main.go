package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pulsefeed/pulsefeed-core/internal/app"
)

type idList []string

func (l *idList) String() string { return strings.Join(*l, ",") }
func (l *idList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v != "" {
		*l = append(*l, v)
	}
	return nil
}

func main() {
	var users idList
	var dryRun bool
	var concurrency int
	flag.Var(&users, "user", "user_id to resync (repeatable, default all)")
	flag.BoolVar(&dryRun, "dry-run", false, "list users without recalculating")
	flag.IntVar(&concurrency, "concurrency", 8, "parallel recalculations")
	flag.Parse()

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	ctx := context.Background()

	var ids []uuid.UUID
	if len(users) > 0 {
		for _, u := range users {
			id, err := uuid.Parse(strings.TrimSpace(u))
			if err == nil && id != uuid.Nil {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			fmt.Println("no valid user_id values provided")
			return
		}
	} else {
		ids, err = application.Repos.User.ListIDs(ctx, nil)
		if err != nil {
			fmt.Printf("list users: %v\n", err)
			os.Exit(1)
		}
	}

	if dryRun {
		for _, id := range ids {
			fmt.Printf("[dry-run] resync user_id=%s\n", id.String())
		}
		fmt.Printf("%d users\n", len(ids))
		return
	}

	if concurrency < 1 {
		concurrency = 1
	}
	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := application.Services.Reputation.Recalc(gctx, id); err != nil {
				failed.Add(1)
				application.Log.Error("resync failed", "user_id", id, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	fmt.Printf("resynced %d users (%d failed)\n", int64(len(ids))-failed.Load(), failed.Load())
	if failed.Load() > 0 {
		os.Exit(1)
	}
}
