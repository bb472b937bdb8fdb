package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/service"
	"github.com/MKhiriev/go-crypter/internal/workers"
	"github.com/MKhiriev/go-crypter/models"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// ErrUsage is returned for unknown commands, bad flags and wrong argument
// counts.
var ErrUsage = fmt.Errorf("%w: usage", models.ErrInvalidInput)

type App struct {
	services  *service.Services
	workers   *workers.Workers
	passwords PasswordSource
	buildInfo models.AppBuildInfo
	out       io.Writer
	errOut    io.Writer

	logger *logger.Logger
}

func NewApp(services *service.Services, workers *workers.Workers, passwords PasswordSource, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("no services given")
	}
	return &App{
		services:  services,
		workers:   workers,
		passwords: passwords,
		buildInfo: buildInfo,
		out:       out,
		errOut:    os.Stderr,
		logger:    logger,
	}, nil
}

type action func(a *App, ctx context.Context, args []string, password string) error

// newRootCommand builds a fresh command tree bound to a. A new tree per Run
// keeps parsed flag state from leaking between invocations.
func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "crypter",
		Short:         "Chunked password-based encryption of images, files and text",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("%w: no command given", ErrUsage)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(
		a.command("encrypt <image>", "Encrypt an image and export the envelope to a .txt file", cobra.ExactArgs(1), true, (*App).encryptImage),
		a.command("decrypt <envelope.txt>", "Decrypt an exported envelope and save the image", cobra.ExactArgs(1), true, (*App).decryptImage),
		a.command("encrypt-file <src> <dst>", "Encrypt any file into a binary envelope", cobra.ExactArgs(2), true, (*App).encryptFile),
		a.command("decrypt-file <src> <dst>", "Decrypt a binary or text envelope file", cobra.ExactArgs(2), true, (*App).decryptFile),
		a.command("encrypt-text <text>", "Print the envelope of text", cobra.ExactArgs(1), true, (*App).encryptText),
		a.command("decrypt-text <envelope>", "Print the text of an envelope", cobra.ExactArgs(1), true, (*App).decryptText),
		a.command("archive <name> <envelope.txt>", "Store an exported envelope in the archive", cobra.ExactArgs(2), false, (*App).archive),
		a.command("archive-list [scheme]", "List archived envelopes, newest first", cobra.RangeArgs(0, 1), false, (*App).archiveList),
		a.command("archive-show <id>", "Print an archived envelope", cobra.ExactArgs(1), false, (*App).archiveShow),
		a.command("archive-rm <id>", "Delete an archived envelope", cobra.ExactArgs(1), false, (*App).archiveRemove),
		a.command("version", "Print build information", cobra.NoArgs, false, (*App).version),
	)

	return root
}

func (a *App) command(use, short string, args cobra.PositionalArgs, password bool, run action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, in []string) error {
			if err := args(cmd, in); err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, in []string) error {
			ctx := cmd.Context()

			if a.workers != nil {
				a.workers.Start(ctx)
				defer a.workers.Stop()
			}

			var pw string
			if password {
				got, err := a.passwords.Password(ctx)
				if err != nil {
					return err
				}
				pw = got
			}

			a.logger.Debug().Str("func", "App.Run").Str("command", cmd.Name()).Msg("running command")
			return run(a, ctx, in, pw)
		},
	}
}

// Run executes the command named by args[0]. On a usage error the usage of
// the matched command is written to the error output.
func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	cmd, err := root.ExecuteContextC(a.logger.WithContext(ctx))
	if errors.Is(err, ErrUsage) {
		fmt.Fprint(a.errOut, cmd.UsageString())
	}
	return err
}

func (a *App) encryptImage(ctx context.Context, args []string, password string) error {
	enc, err := a.services.ImageCrypterService.EncryptImage(ctx, models.SelectedMedia{URI: args[0]}, password)
	if err != nil {
		return err
	}
	path, err := a.services.EnvelopeArchiveService.Export(ctx, enc.Envelope)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\t%d chunk(s)\t%s\n", path, enc.Chunks, enc.Scheme)
	return nil
}

func (a *App) decryptImage(ctx context.Context, args []string, password string) error {
	text, err := a.services.EnvelopeArchiveService.Import(ctx, args[0])
	if err != nil {
		return err
	}
	img, err := a.services.ImageCrypterService.DecryptImage(ctx, text, password)
	if err != nil {
		return err
	}
	path, err := a.services.ImageCrypterService.SaveDecryptedImage(ctx, img)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\t%s\t%s\n", path, img.Kind.MIME(), humanize.IBytes(uint64(len(img.Data))))
	return nil
}

func (a *App) encryptFile(ctx context.Context, args []string, password string) error {
	res, err := a.services.ImageCrypterService.EncryptFile(ctx, args[0], args[1], password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\t%d chunk(s)\t%s\n", args[1], res.Chunks, humanize.IBytes(uint64(res.OutputBytes)))
	return nil
}

func (a *App) decryptFile(ctx context.Context, args []string, password string) error {
	res, err := a.services.ImageCrypterService.DecryptFile(ctx, args[0], args[1], password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\t%d chunk(s)\t%s\n", args[1], res.Chunks, humanize.IBytes(uint64(res.OutputBytes)))
	return nil
}

func (a *App) encryptText(ctx context.Context, args []string, password string) error {
	env, err := a.services.TextCrypterService.EncryptText(ctx, args[0], password)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, env)
	return nil
}

func (a *App) decryptText(ctx context.Context, args []string, password string) error {
	text, err := a.services.TextCrypterService.DecryptText(ctx, args[0], password)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, text)
	return nil
}

func (a *App) archive(ctx context.Context, args []string, _ string) error {
	text, err := a.services.EnvelopeArchiveService.Import(ctx, args[1])
	if err != nil {
		return err
	}
	rec, err := a.services.EnvelopeArchiveService.Archive(ctx, args[0], text)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, rec.ID)
	return nil
}

func (a *App) archiveList(ctx context.Context, args []string, _ string) error {
	var filter models.EnvelopeFilter
	if len(args) == 1 {
		scheme, err := models.ParseScheme(args[0])
		if err != nil {
			return err
		}
		filter.Scheme = scheme
	}

	records, err := a.services.EnvelopeArchiveService.List(ctx, filter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSCHEME\tCHUNKS\tSIZE\tCREATED")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, displayName(r.Name), r.Scheme, strconv.Itoa(r.Chunks),
			humanize.IBytes(uint64(r.Size)), humanize.Time(r.CreatedAt))
	}
	return w.Flush()
}

func (a *App) archiveShow(ctx context.Context, args []string, _ string) error {
	rec, err := a.services.EnvelopeArchiveService.Load(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, rec.Body)
	return nil
}

func (a *App) archiveRemove(ctx context.Context, args []string, _ string) error {
	return a.services.EnvelopeArchiveService.Remove(ctx, args[0])
}

func (a *App) version(context.Context, []string, string) error {
	fmt.Fprintf(a.out, "Build version: %s\n", a.buildInfo.BuildVersion())
	fmt.Fprintf(a.out, "Build date: %s\n", a.buildInfo.BuildDate())
	fmt.Fprintf(a.out, "Build commit: %s\n", a.buildInfo.BuildCommit())
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "-"
	}
	return filepath.Base(name)
}
