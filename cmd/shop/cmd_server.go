package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/app/routes"
	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/internal/server"
	"github.com/lunarosa/shop/pkg/kvstore"
	"github.com/lunarosa/shop/pkg/router"
	"github.com/lunarosa/shop/pkg/ws"
)

// shop serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// shop run — alias kept for muscle memory.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the HTTP server (alias: serve)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// shop route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Wire the route table over a throwaway in-memory store; nothing is
		// served, we only want the registration side effects.
		store := kvstore.NewMemory()
		catalogRepo := repositories.NewCatalogRepository(store)
		cartRepo := repositories.NewCartRepository(store)
		orderRepo := repositories.NewOrderRepository(store)
		settingsRepo := repositories.NewSettingsRepository(store)
		cartService := services.NewCartService(cartRepo, catalogRepo)

		r := router.New()
		routes.RegisterAPI(r, routes.Deps{
			Catalog:  services.NewCatalogService(catalogRepo, settingsRepo),
			Cart:     cartService,
			Checkout: services.NewCheckoutService(cartService, cartRepo, catalogRepo, orderRepo, settingsRepo),
			Orders:   orderRepo,
			Settings: settingsRepo,
			OrderHub: ws.NewHub(),
		})

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
