package main

import (
	"context"
	"flag"
	"log"
	"os"

	"querydesk/internal/config"
	"querydesk/internal/handler"
	"querydesk/internal/render"
	"querydesk/internal/service"

	"github.com/mattn/go-isatty"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file to load, if present")
	endpoint := flag.String("endpoint", "", "backend query endpoint (overrides QUERYDESK_ENDPOINT)")
	port := flag.String("port", "", "port for the web console (overrides QUERYDESK_PORT)")
	query := flag.String("q", "", "run a single query and print the result instead of serving")
	plotOut := flag.String("plot-out", "", "with -q, write a returned plot to this PNG file")
	flag.Parse()

	cfg, err := config.Load(*envFile, config.Config{Endpoint: *endpoint, Port: *port})
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	client := service.NewHTTPClient(cfg.Endpoint)

	if *query != "" {
		os.Exit(runQuery(client, *query, *plotOut))
	}

	r := handler.NewRouter(client)
	log.Printf("querydesk listening on :%s, backend %s\n", cfg.Port, cfg.Endpoint)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func runQuery(client service.QueryClient, query, plotOut string) int {
	display := render.NewDisplay()
	submitErr := render.Submit(context.Background(), client, display, query)

	styled := isatty.IsTerminal(os.Stdout.Fd())
	if err := render.WriteTerminal(os.Stdout, display, styled); err != nil {
		log.Printf("Error writing result: %v", err)
		return 1
	}

	if plotOut != "" && display.Plot.Visible {
		data, err := render.PlotBytes(display.Plot.Images[0])
		if err != nil {
			log.Printf("Error decoding plot: %v", err)
			return 1
		}
		if err := os.WriteFile(plotOut, data, 0o644); err != nil {
			log.Printf("Error writing plot: %v", err)
			return 1
		}
		log.Println("Plot written to", plotOut)
	}

	if submitErr != nil {
		return 1
	}
	return 0
}
