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
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BuzzLyutic/taskbook/internal/config"
	"github.com/BuzzLyutic/taskbook/internal/handler"
	"github.com/BuzzLyutic/taskbook/internal/model"
	"github.com/BuzzLyutic/taskbook/internal/repo"
	"github.com/BuzzLyutic/taskbook/internal/service"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "taskbook",
	Short:         "Personal task list",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Read commands from stdin until exit",
	RunE:  runShell,
}

var execCmd = &cobra.Command{
	Use:   "exec COMMAND...",
	Short: "Run a single command, e.g. taskbook exec add n/Read p/2 d/Chapter 1",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExec,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the command interface over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("TASKBOOK_CONFIG"), "path to YAML config file")
	rootCmd.AddCommand(shellCmd, execCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is everything a subcommand needs; close releases the logger and storage.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	service *service.TaskService
	close   func()
}

func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	storage, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	srv, err := service.NewTaskService(ctx, storage, logger)
	if err != nil {
		closeStorage()
		logger.Sync()
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		service: srv,
		close: func() {
			closeStorage()
			logger.Sync()
		},
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func openStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (repo.Storage, func(), error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL) // Создаем пул соединений к БД
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		store := repo.NewPostgresStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("Successfully connected to the Database!")
		return store, pool.Close, nil
	default:
		store := repo.NewJSONStore(cfg.DataDir)
		logger.Info("using json storage", zap.String("file", store.TaskPath()))
		return store, func() {}, nil
	}
}

func runExec(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	res, err := a.service.Execute(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Feedback)
	printTasks(cmd.OutOrStdout(), res.Tasks)
	return nil
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	printTasks(out, a.service.FilteredTasks())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, err := a.service.Execute(ctx, line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, res.Feedback)
		if res.Exit {
			return nil
		}
		if !res.ShowHelp {
			printTasks(out, res.Tasks)
		}
	}
}

func printTasks(w io.Writer, tasks []model.Task) {
	for i, t := range tasks {
		fmt.Fprintf(w, "%d. %s\n", i+1, t)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	taskHandler := handler.NewTaskHandler(a.service, a.logger)

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + a.cfg.Port,
		Handler:      taskHandler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { // Запуск сервера и обработка ошибок
		a.logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	select {
	case <-quit:
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	a.logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.logger.Info("Server stopped successfully!")
	return nil
}
