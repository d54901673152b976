package cmd

import (
	"bloggo/blog"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(postsCmd)
}

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"ls"},
	Short:   "List all posts",
	Args:    cobra.NoArgs,
	RunE:    listPosts,
}

func listPosts(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	details, err := blog.New(s).Details(cmd.Context())
	if err != nil {
		return err
	}
	if len(details) == 0 {
		fmt.Println("🤷 No posts")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Title", "Author", "Comments", "Created"})
	for _, d := range details {
		table.Append([]string{
			strconv.FormatInt(d.ID, 10),
			d.Title,
			d.Author,
			strconv.Itoa(len(d.Comments)),
			d.CreatedAt.Format(time.DateTime),
		})
	}
	table.Render()

	return nil
}
