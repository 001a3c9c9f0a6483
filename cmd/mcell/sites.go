package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/plin1112/mcell"
	"github.com/plin1112/mcell/pkg/adapters/file"
	"github.com/plin1112/mcell/pkg/adapters/redis"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/dsl"
	"github.com/plin1112/mcell/pkg/ports"
	"github.com/plin1112/mcell/pkg/release"
	"github.com/plin1112/mcell/pkg/scenefile"
	"github.com/spf13/cobra"
)

type sitesOptions struct {
	JSON        bool
	OutDir      string
	RedisAddr   string
	RedisPrefix string
	RedisTTL    time.Duration
	Filter      domain.SiteFilter
}

var sitesCmd = &cobra.Command{
	Use:   "sites <scene.yaml>",
	Short: "List the release sites of a scene",
	Long: `Lists every validated release site of a scene. With --out-dir or --redis the
site records are also saved to a catalog that other tools can read, and the
listing is read back from that catalog, so it includes sites saved by earlier
runs. --shape, --method and --molecule narrow the listing.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger(cmd)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(1)
		}
		var opts sitesOptions
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.OutDir, _ = cmd.Flags().GetString("out-dir")
		opts.RedisAddr, _ = cmd.Flags().GetString("redis")
		opts.RedisPrefix, _ = cmd.Flags().GetString("redis-prefix")
		opts.RedisTTL, _ = cmd.Flags().GetDuration("redis-ttl")
		opts.Filter.Shape, _ = cmd.Flags().GetString("shape")
		opts.Filter.Method, _ = cmd.Flags().GetString("method")
		opts.Filter.Molecule, _ = cmd.Flags().GetString("molecule")

		if err := runSites(cmd.Context(), cmd.OutOrStdout(), logger, args[0], opts); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	sitesCmd.Flags().Bool("json", false, "Print site records as JSON")
	sitesCmd.Flags().String("out-dir", "", "Save site records as JSON files in this directory")
	sitesCmd.Flags().String("redis", "", "Save site records to the Redis server at this address")
	sitesCmd.Flags().String("redis-prefix", redis.DefaultPrefix, "Key prefix for Redis site records")
	sitesCmd.Flags().Duration("redis-ttl", 0, "Expiry of Redis site records (0 keeps them)")
	sitesCmd.Flags().String("shape", "", "Only list sites of this shape (e.g. spherical, region)")
	sitesCmd.Flags().String("method", "", "Only list sites with this quantity method (e.g. density)")
	sitesCmd.Flags().String("molecule", "", "Only list sites releasing this species")
	rootCmd.AddCommand(sitesCmd)
}

func runSites(ctx context.Context, w io.Writer, logger *slog.Logger, path string, opts sitesOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.OutDir != "" && opts.RedisAddr != "" {
		return fmt.Errorf("--out-dir and --redis are mutually exclusive")
	}

	model, err := scenefile.Load(path, dsl.WithLogger(logger))
	if err != nil {
		return err
	}

	var store ports.SiteStore
	switch {
	case opts.OutDir != "":
		store = file.New(opts.OutDir)
	case opts.RedisAddr != "":
		rs := redis.New(opts.RedisAddr, "", 0, redis.WithPrefix(opts.RedisPrefix), redis.WithTTL(opts.RedisTTL))
		defer rs.Close()
		store = rs
	}

	var records []domain.SiteRecord
	if store != nil {
		sim := mcell.New(model.Config, mcell.WithLogger(logger), mcell.WithSiteStore(store))
		for _, site := range model.Sites {
			if err := sim.Certify(ctx, site); err != nil {
				return err
			}
		}
		logger.Info("site records saved", "count", len(model.Sites))

		records, err = store.Find(ctx, opts.Filter)
		if err != nil {
			return err
		}
	} else {
		for _, site := range model.Sites {
			if r := release.Describe(site); opts.Filter.Matches(r) {
				records = append(records, r)
			}
		}
	}
	if records == nil {
		records = []domain.SiteRecord{}
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	return printSites(w, records)
}

func printSites(w io.Writer, records []domain.SiteRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSHAPE\tMETHOD\tMOLECULE\tWHERE")
	for _, r := range records {
		where := "-"
		switch {
		case r.Expression != "":
			where = r.Expression
		case r.Location != nil:
			where = r.Location.String()
		}
		mol := r.Molecule
		if mol == "" {
			mol = fmt.Sprintf("list(%d)", r.ListSize)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Shape, r.Method, mol, where)
	}
	return tw.Flush()
}
