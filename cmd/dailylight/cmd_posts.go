package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/BloggingApp/dailylight-service/internal/dto"
	"github.com/BloggingApp/dailylight-service/pkg/client"
	"github.com/spf13/cobra"
)

var (
	postDate      string
	postQuote     string
	postReference string
	postInsight   string
	postRemember  string
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the insight for today or --date",
	RunE:  runToday,
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "List every insight, most recent first",
	RunE:  runArchive,
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish the insight for a date",
	RunE:  runCreate,
}

var editCmd = &cobra.Command{
	Use:   "edit <post-id>",
	Short: "Edit fields of an existing insight",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like an insight (once per client)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLike,
}

func init() {
	todayCmd.Flags().StringVar(&postDate, "date", "", "Date to show (YYYY-MM-DD)")

	for _, cmd := range []*cobra.Command{createCmd, editCmd} {
		cmd.Flags().StringVar(&postDate, "date", "", "Publication date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&postQuote, "quote", "", "Scripture quotation")
		cmd.Flags().StringVar(&postReference, "reference", "", "Scripture reference, e.g. Genesis 1:1")
		cmd.Flags().StringVar(&postInsight, "insight", "", "Reflection text; newlines separate paragraphs")
		cmd.Flags().StringVar(&postRemember, "remember", "", "Short takeaway")
	}
	_ = createCmd.MarkFlagRequired("quote")
	_ = createCmd.MarkFlagRequired("reference")
	_ = createCmd.MarkFlagRequired("insight")
	_ = createCmd.MarkFlagRequired("date")
}

func runToday(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	c, err := newClient()
	if err != nil {
		return err
	}

	view, err := c.Today(ctx, postDate)
	if err != nil {
		if errors.Is(err, client.ErrNoPost) {
			fmt.Fprint(cmd.OutOrStdout(), renderEmptyDay())
			return nil
		}
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderToday(view, c.HasLiked(view.Post.ID)))
	return nil
}

func runArchive(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	c, err := newClient()
	if err != nil {
		return err
	}

	posts, err := c.Archive(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "The journey has just begun. No records yet.")
		return nil
	}

	for _, post := range posts {
		fmt.Fprintln(cmd.OutOrStdout(), renderArchiveEntry(post))
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	c, err := newClient()
	if err != nil {
		return err
	}

	req := dto.CreatePostRequest{
		Quote:     postQuote,
		Reference: postReference,
		Insight:   postInsight,
		Date:      postDate,
	}
	if postRemember != "" {
		req.Remember = &postRemember
	}

	post, err := c.Create(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Published %s (%s)\n", post.Date.Format("2006-01-02"), post.ID)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	c, err := newClient()
	if err != nil {
		return err
	}

	req := dto.EditPostRequest{ID: args[0]}
	flags := cmd.Flags()
	if flags.Changed("quote") {
		req.Quote = &postQuote
	}
	if flags.Changed("reference") {
		req.Reference = &postReference
	}
	if flags.Changed("insight") {
		req.Insight = &postInsight
	}
	if flags.Changed("remember") {
		req.Remember = &postRemember
	}
	if flags.Changed("date") {
		req.Date = &postDate
	}

	post, err := c.Edit(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", post.Date.Format("2006-01-02"), post.ID)
	return nil
}

func runLike(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	c, err := newClient()
	if err != nil {
		return err
	}

	likes, err := c.Like(ctx, args[0])
	if err != nil {
		if errors.Is(err, client.ErrAlreadyLiked) {
			fmt.Fprintln(cmd.OutOrStdout(), "You already liked this insight.")
			return nil
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "♥ %s\n", strconv.FormatInt(likes, 10))
	return nil
}
