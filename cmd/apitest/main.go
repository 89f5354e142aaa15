// Walkthrough harness for the partner API: login, profile, menu, hours.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/frontdash/partner-desktop/core/auth"
	"github.com/frontdash/partner-desktop/core/config"
	"github.com/frontdash/partner-desktop/core/frontdash"
	"github.com/frontdash/partner-desktop/core/httpclient"
	"github.com/frontdash/partner-desktop/core/logging"
	"github.com/frontdash/partner-desktop/core/state"
)

func main() {
	cfgPath := flag.String("config", "", "config file path")
	username := flag.String("user", "", "portal username")
	password := flag.String("pass", "", "portal password (prompted when empty)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewDevelopment()
	defer logger.Sync()

	httpCli := httpclient.NewClient(
		httpclient.WithTimeout(cfg.RequestTimeout.Std()),
		httpclient.WithRateLimiter(httpclient.NewTokenBucketLimiter(cfg.RateLimitQPS, cfg.RateLimitBurst, nil)),
		httpclient.WithLogger(logger),
	)
	api := frontdash.NewClient(
		frontdash.WithBaseURL(cfg.BaseURL),
		frontdash.WithHTTPClient(httpCli),
		frontdash.WithLogger(logger),
	)
	session := auth.NewManager(api,
		auth.WithLogger(logger),
		auth.WithAdminLogin(cfg.AdminLoginAllowed),
	)
	store := state.NewStore(session, api, state.WithLogger(logger))

	ctx := context.Background()

	user := strings.TrimSpace(*username)
	if user == "" {
		user = prompt("username: ")
	}
	pass := *password
	if pass == "" {
		pass = prompt("password: ")
	}

	sess, err := session.Login(ctx, user, pass)
	if err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("logged in as %s (restaurant %s, state=%s)\n",
		sess.Restaurant.Username, sess.Restaurant.ID, session.State())

	if profile, err := store.LoadProfile(ctx); err != nil {
		fmt.Printf("profile: ERROR %v\n", err)
	} else {
		fmt.Printf("profile: %s — %s (%s)\n", profile.Name, profile.Description, profile.CuisineType)
	}

	if menu, err := store.LoadMenu(ctx); err != nil {
		fmt.Printf("menu: ERROR %v\n", err)
	} else {
		fmt.Printf("menu: %d items\n", len(menu))
		for _, item := range menu {
			mark := " "
			if !item.Available {
				mark = "x"
			}
			fmt.Printf("  [%s] %-30s $%.2f  %s\n", mark, item.Name, item.Price, item.Category)
		}
	}

	if hours, err := store.LoadHours(ctx); err != nil {
		fmt.Printf("hours: ERROR %v\n", err)
	} else {
		for _, d := range hours.Days {
			if d.Open {
				fmt.Printf("  %-10s %s–%s\n", d.Day, d.OpenTime, d.CloseTime)
			} else {
				fmt.Printf("  %-10s closed\n", d.Day)
			}
		}
	}

	var reconciler *state.Reconciler
	if cfg.ReconcileSchedule != "" {
		reconciler = state.NewReconciler(store, logger)
		if err := reconciler.Start(cfg.ReconcileSchedule); err != nil {
			fmt.Printf("reconciler: %v\n", err)
		} else {
			fmt.Printf("reconciler running on %q, press enter to stop\n", cfg.ReconcileSchedule)
			prompt("")
			reconciler.Stop()
		}
	}

	store.Logout(ctx)
	fmt.Printf("logged out (state=%s)\n", session.State())
}

func prompt(label string) string {
	fmt.Print(label)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
