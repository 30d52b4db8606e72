package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Mohamedyoonus/portfolio/internal/config"
	"github.com/Mohamedyoonus/portfolio/internal/contact"
	"github.com/Mohamedyoonus/portfolio/internal/content"
	"github.com/Mohamedyoonus/portfolio/internal/navigation"
	"github.com/Mohamedyoonus/portfolio/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site with a contact form that hands off to WhatsApp",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

var (
	linkName    string
	linkEmail   string
	linkMessage string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Print the WhatsApp deep link a contact submission would open",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := contact.Submission{Name: linkName, Email: linkEmail, Message: linkMessage}
		res := contact.Validate(s)
		if !res.Valid() {
			for _, f := range contact.Fields {
				if fe := res[f]; fe != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f, fe.Message())
				}
			}
			return contact.ErrInvalidSubmission
		}
		url, err := contact.NewDispatcher(cfg.ContactChannelURL, cfg.ContactRecipient).URL(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

var (
	spyLayout string
	spyBias   float64
)

var spyCmd = &cobra.Command{
	Use:   "spy",
	Short: "Read scroll offsets from stdin and print the active section as it changes",
	Long: `Reads one scroll offset per line from stdin and prints the id of the
section under the header each time it changes. The layout is a comma
separated list of id:top:bottom triples, for example:

  portfolio spy --layout home:0:900,about:900:1800 < offsets.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sections, err := navigation.ParseLayout(spyLayout)
		if err != nil {
			return err
		}
		bias := spyBias
		if !cmd.Flags().Changed("bias") {
			bias = cfg.NavHeaderOffset
		}
		return runSpy(cmd.Context(), navigation.NewTracker(sections, bias), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	linkCmd.Flags().StringVar(&linkName, "name", "", "sender name")
	linkCmd.Flags().StringVar(&linkEmail, "email", "", "sender email")
	linkCmd.Flags().StringVar(&linkMessage, "message", "", "message body")

	spyCmd.Flags().StringVar(&spyLayout, "layout", "", "section layout as id:top:bottom,...")
	spyCmd.Flags().Float64Var(&spyBias, "bias", navigation.DefaultHeaderOffset, "header offset added before matching")
	_ = spyCmd.MarkFlagRequired("layout")

	rootCmd.AddCommand(serveCmd, linkCmd, spyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Release() {
		zc = zap.NewProductionConfig()
	}
	if cfg.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc.Build()
}

func runServe(cmd *cobra.Command, args []string) error {
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	site := content.Default()
	if err := site.Validate(); err != nil {
		return fmt.Errorf("site content: %w", err)
	}

	s := newServer(cfg, logger, st, site)
	h, err := s.handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("mode", cfg.GinMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return s.cleanupLoop(gctx, 24*time.Hour)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	s.shutdown()
	return err
}

// runSpy feeds offsets read from r to the tracker and writes each change to w.
// Lines that are not numbers are skipped. A failed write returns at once even
// while r is still blocked in a read.
func runSpy(ctx context.Context, t *navigation.Tracker, r io.Reader, w io.Writer) error {
	g, gctx := errgroup.WithContext(ctx)

	events := make(chan navigation.ScrollPositionChanged)
	active := t.Watch(gctx, events)

	// The reader stays outside the group: a read on stdin cannot be interrupted.
	scanErr := make(chan error, 1)
	go func() {
		defer close(events)
		scanErr <- scanOffsets(gctx, r, events)
	}()

	g.Go(func() error {
		for id := range active {
			if _, err := fmt.Fprintln(w, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	select {
	case err := <-scanErr:
		return err
	default:
		return ctx.Err()
	}
}

func scanOffsets(ctx context.Context, r io.Reader, events chan<- navigation.ScrollPositionChanged) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		offset, err := strconv.ParseFloat(line, 64)
		if err != nil {
			continue
		}
		select {
		case events <- navigation.ScrollPositionChanged{Offset: offset}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return sc.Err()
}
