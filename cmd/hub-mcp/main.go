package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/hub-mcp/internal/hub/common"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Host string `toml:"host"`
	Port string `toml:"port"`
}

// Config holds all hub-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	GitHub  common.GitHubConfig  `toml:"github"`
	Logging common.LoggingConfig `toml:"logging"`
}

// newDefaultConfig returns a Config with sensible defaults.
func newDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Name: "Hub-MCP",
			Host: "127.0.0.1",
			Port: "4270",
		},
		GitHub: common.GitHubConfig{
			BaseURL: "https://api.github.com",
			Timeout: "30s",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/hub-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// loadConfig loads configuration from a TOML file with defaults and env overrides.
func loadConfig(path string) Config {
	cfg := newDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Failed to read config file %s: %v", path, err)
			}
			// File not found — use defaults
		} else {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				log.Fatalf("Failed to parse config file %s: %v", path, err)
			}
		}
	}

	// Apply environment overrides
	if pat := os.Getenv("GITHUB_PAT"); pat != "" {
		cfg.GitHub.Token = pat
	}
	if url := os.Getenv("GITHUB_API_URL"); url != "" {
		cfg.GitHub.BaseURL = url
	}
	if host := os.Getenv("HUB_MCP_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("HUB_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("HUB_MCP_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	return cfg
}

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "hub-mcp.toml", "Path to config file")
	host := flag.String("host", "", "Listen host for the HTTP transport (overrides config)")
	port := flag.String("port", "", "Listen port for the HTTP transport (overrides config)")
	flag.Parse()

	cfg := loadConfig(*configFile)
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	// Load version
	common.LoadVersionFromFile()

	// Setup logging
	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := newGitHubClient(cfg.GitHub, logger)

	// Create MCP server with tool definitions
	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register all MCP tools
	registerTools(mcpServer, client)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	addr := cfg.Server.Host + ":" + cfg.Server.Port

	// Streamable HTTP transport — listens on configured host/port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	log.Printf("Starting MCP Streamable HTTP on %s", addr)
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on %s\n", addr)

	if err := httpServer.Start(addr); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
