// Package main implements the dailylight command line reader and editor.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BloggingApp/dailylight-service/pkg/client"
	"github.com/spf13/cobra"
)

var (
	apiURL    string
	likesFile string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "dailylight",
	Short:         "Read and publish daily insights",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func defaultLikesFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dailylight", "likes.json")
}

func newClient() (*client.Client, error) {
	tracker, err := client.NewLikeTracker(likesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load liked posts: %w", err)
	}
	return client.New(apiURL, tracker), nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func init() {
	apiDefault := os.Getenv("DAILYLIGHT_API")
	if apiDefault == "" {
		apiDefault = "http://localhost:8080"
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", apiDefault, "API base URL (or set DAILYLIGHT_API)")
	rootCmd.PersistentFlags().StringVar(&likesFile, "likes-file", defaultLikesFile(), "File remembering which posts you liked")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(verseCmd)
	rootCmd.AddCommand(translationsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
