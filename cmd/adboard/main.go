// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/adboard"
	"github.com/poiesic/adboard/config"
	"github.com/poiesic/adboard/core"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "adboard",
		Usage: "Classifieds board storage and messaging toolbox",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Directory to search for adboard.json",
				Value:   ".",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Populate the configured backend with demo data",
				Action: seedCommand,
			},
			{
				Name:   "stats",
				Usage:  "Print a user's mailbox summary",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "User id to summarize",
						Required: true,
					},
				},
			},
			{
				Name:   "migrate",
				Usage:  "Copy a file-backend data directory into a badger directory",
				Action: migrateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "File backend data directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "Badger database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func openDatabase(c *cli.Context) (*adboard.Database, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	return adboard.NewDatabase(cfg)
}

func seedCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := c.Context

	type account struct {
		login, name, email string
	}
	accounts := []account{
		{"ann", "Ann", "ann@example.com"},
		{"bob", "Bob", "bob@example.com"},
		{"cleo", "Cleo", "cleo@example.com"},
	}

	ids := map[string]core.ID{}
	for _, a := range accounts {
		user, err := db.Users().Create(ctx, &core.User{
			Login: a.login,
			Name:  a.name,
			Email: a.email,
		}, "demo-"+a.login)
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", a.login, err)
		}
		ids[a.login] = user.Id
		slog.Info("seeded user", "login", a.login, "id", user.Id)
	}

	demoListings := []*core.Listing{
		{ShortText: "Mountain bike", Description: "Hardly used, 21 gears", OwnerId: ids["ann"], Tags: []string{"sport", "used"}},
		{ShortText: "Garden table", Description: "Solid oak, seats six", OwnerId: ids["bob"], Tags: []string{"furniture"}},
		{ShortText: "Ski boots", Description: "Size 42, one season", OwnerId: ids["ann"], Tags: []string{"sport", "winter"}},
	}
	for _, l := range demoListings {
		created, err := db.Listings().Create(ctx, l)
		if err != nil {
			return fmt.Errorf("seeding listing %q: %w", l.ShortText, err)
		}
		slog.Info("seeded listing", "id", created.Id, "shortText", created.ShortText)
	}

	chatID, err := db.Chats().Create(ctx, ids["bob"], ids["ann"])
	if err != nil {
		return fmt.Errorf("seeding chat: %w", err)
	}
	for _, m := range []struct {
		author core.ID
		text   string
	}{
		{ids["bob"], "Is the bike still available?"},
		{ids["ann"], "Yes, come by tomorrow."},
		{ids["bob"], "Great, see you then!"},
	} {
		if _, err := db.Chats().AppendMessage(ctx, chatID,
			&core.Message{AuthorId: m.author, Text: m.text}, true); err != nil {
			return fmt.Errorf("seeding message: %w", err)
		}
	}
	slog.Info("seeded chat", "id", chatID)

	return nil
}

func statsCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	agg, err := db.NewAggregator()
	if err != nil {
		return err
	}
	defer agg.Close()

	userID := core.ID(c.String("user"))
	summary, err := agg.Summary(c.Context, userID)
	if err != nil {
		return err
	}

	fmt.Printf("user %s: %d unread of %d messages across %d chats\n",
		userID, summary.Unread, summary.Total, len(summary.PerChat))
	for _, s := range summary.PerChat {
		fmt.Printf("  chat %s: %d unread / %d total\n", s.ChatId, s.Unread, s.Total)
	}
	return nil
}
