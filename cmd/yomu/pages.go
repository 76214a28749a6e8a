package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yomu-reader/yomu/pkg/services"
	"github.com/yomu-reader/yomu/pkg/sources"
)

var pagesCmd = &cobra.Command{
	Use:   "pages [gist-id chapter-key | album-descriptor]",
	Short: "Resolve and print a chapter's page URLs",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		reader, _ := mustWire(false)

		var (
			loaded *services.LoadedChapter
			err    error
		)
		if len(args) == 2 {
			loaded, err = reader.LoadChapter(args[0], args[1])
		} else if albumID, ok := sources.AlbumID(args[0]); ok {
			loaded, err = reader.LoadAlbum(albumID)
		} else {
			cobra.CheckErr(fmt.Errorf("%q is not an album descriptor; pass a gist id and a chapter key", args[0]))
		}
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(loaded.Pages) == 0 {
			fmt.Println("No pages.")
			return
		}
		for _, page := range loaded.Pages {
			fmt.Println(page)
		}
	},
}
