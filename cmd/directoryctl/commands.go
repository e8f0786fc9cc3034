package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"employee-directory/internal/api/routes"
	"employee-directory/internal/archive"
	"employee-directory/internal/config"
	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/logger"
	"employee-directory/internal/models"
	"employee-directory/internal/repository"
	"employee-directory/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the list command
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type packOptions struct {
	request  service.CreateEmployeeCardRequest
	headshot string
	media    []string
	bioFile  string
	outDir   string
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "directoryctl",
		Short:         "Employee directory tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				if apperrors.IsConfiguration(err) {
					return fmt.Errorf("invalid configuration: %w", err)
				}
				return err
			}
			cfg = loaded

			logger.Setup(cfg.LogLevel)
			// stdout carries command output
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	root.AddCommand(newSlugCmd())
	root.AddCommand(newPackCmd(func() *config.Config { return cfg }))
	root.AddCommand(newListCmd(func() *config.Config { return cfg }))

	return root
}

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <first-name> <last-name>",
		Short: "Print the slug derived from a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), models.DeriveSlug(args[0], args[1]))
			return nil
		},
	}
}

func newPackCmd(cfg func() *config.Config) *cobra.Command {
	opts := &packOptions{}

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Package a new employee into <slug>-employee-card.zip",
		Long: `Builds the same archive as the self-service form: data.json, contact.vcf,
the headshot and every media file under a folder named after the slug.
Unzip it into the employees folder and add the slug to the directory index to publish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, cfg(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.request.FirstName, "first-name", "", "first name")
	f.StringVar(&opts.request.LastName, "last-name", "", "last name")
	f.StringVar(&opts.request.Title, "title", "", "job title")
	f.StringVar(&opts.request.Department, "department", "", "department")
	f.StringVar(&opts.request.Email, "email", "", "email address")
	f.StringVar(&opts.request.Phone, "phone", "", "phone number (optional)")
	f.StringVar(&opts.request.LinkedIn, "linkedin", "", "LinkedIn address (optional)")
	f.StringVar(&opts.bioFile, "bio-file", "", "file holding the bio markup")
	f.StringVar(&opts.headshot, "headshot", "", "headshot image file")
	f.StringArrayVar(&opts.media, "media", nil, "additional media file, repeatable")
	f.StringVarP(&opts.outDir, "out", "o", ".", "directory the archive is written to")
	_ = cmd.MarkFlagRequired("headshot")

	return cmd
}

func runPack(cmd *cobra.Command, cfg *config.Config, opts *packOptions) error {
	req := opts.request
	if opts.bioFile != "" {
		bio, err := os.ReadFile(opts.bioFile)
		if err != nil {
			return fmt.Errorf("failed to read bio: %w", err)
		}
		req.BioHTML = string(bio)
	}

	headshot := &service.Upload{Filename: filepath.Base(opts.headshot), Blob: archive.FileBlob(opts.headshot)}
	media := make([]service.Upload, 0, len(opts.media))
	for _, path := range opts.media {
		media = append(media, service.Upload{Filename: filepath.Base(path), Blob: archive.FileBlob(path)})
	}

	cardService := service.NewEmployeeCardService(archive.NewBuilder(), cfg.Site(), validator.New())
	card, err := cardService.BuildEmployeeCard(&req, headshot, media)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	out := filepath.Join(opts.outDir, card.Filename)
	if err := os.WriteFile(out, card.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(card.Content))
	fmt.Fprintf(cmd.OutOrStdout(), "Publish by extracting it into %s and adding %q to the directory index.\n",
		routes.EmployeesRoot(cfg), card.Slug)
	return nil
}

func newListCmd(cfg func() *config.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Resolve the directory index and print the management list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg(), format)
		},
	}
	cmd.Flags().StringVar(&format, "output", formatText, "output format: text, json or yaml")

	return cmd
}

func runList(ctx context.Context, out, errOut io.Writer, cfg *config.Config, format string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	index, err := repository.LoadDirectoryIndex(cfg.DirectoryIndexFile)
	if err != nil {
		return err
	}
	records, err := repository.NewRecordRepository(cfg.RecordSource, routes.EmployeesRoot(cfg), cfg.RecordBaseURL, cfg.HTTPTimeout(), validator.New())
	if err != nil {
		return err
	}

	directory := service.NewDirectoryService(records, index, cfg.Site(), cfg.ResolverConcurrency)
	resp := directory.ListManagementEntries(ctx)

	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return err
		}
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	case formatText:
		for _, e := range resp.Employees {
			fmt.Fprintf(out, "%s\t%s\t%s\n", e.Slug, e.DisplayName, e.TitleAndDepartment)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	for _, f := range resp.Failures {
		fmt.Fprintf(errOut, "skipped %s (%s): %s\n", f.Slug, f.Reason, f.Error)
	}
	return nil
}
