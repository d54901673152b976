package cmd

import (
	"bloggo/archive"
	"bloggo/blog"

	"github.com/spf13/cobra"
)

var (
	flagBucket   string
	flagPrefix   string
	flagEndpoint string
)

func init() {
	exportCmd.Flags().StringVar(&flagBucket, "bucket", "", "destination S3 bucket")
	exportCmd.Flags().StringVar(&flagPrefix, "prefix", "", "key prefix inside the bucket")
	exportCmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "custom S3 endpoint, e.g. http://localhost:4566")
	exportCmd.MarkFlagRequired("bucket")
	RootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every post with its comments as JSON to S3",
	Args:  cobra.NoArgs,
	RunE:  export,
}

func export(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	details, err := blog.New(s).Details(cmd.Context())
	if err != nil {
		return err
	}

	x, err := archive.NewS3Exporter(cmd.Context(), flagBucket, flagPrefix, flagEndpoint)
	if err != nil {
		return err
	}
	n, err := x.Export(cmd.Context(), details)
	if err != nil {
		return err
	}

	success("Exported %d posts to s3://%s", n, flagBucket)
	return nil
}
