// Package cli implements the non-interactive subcommands: listing,
// creating, and exporting documents without entering the TUI.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/hollisbeck/vellum/internal/config"
	"github.com/hollisbeck/vellum/internal/services/docstore"
)

// Dependencies holds the services needed for CLI commands
type Dependencies struct {
	Config *config.Config
	Store  *docstore.Store
	Logger *slog.Logger
}

// NewDependencies creates a Dependencies instance from loaded config
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	if logger == nil {
		logger = slog.Default()
	}
	store, err := docstore.NewStore(cfg.Storage.Dir, logger)
	if err != nil {
		return nil, err
	}
	return &Dependencies{
		Config: cfg,
		Store:  store,
		Logger: logger,
	}, nil
}

// ListCommand prints all documents, most recently updated first
func ListCommand(deps *Dependencies) error {
	docs, err := deps.Store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tUPDATED")
	for _, doc := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", doc.ID, doc.Title, doc.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// NewCommand creates an empty document with the given title
func NewCommand(deps *Dependencies, title string) error {
	doc, err := deps.Store.Create(title)
	if err != nil {
		return err
	}
	deps.Logger.Info("document created", "id", doc.ID, "title", title)
	fmt.Println(doc.ID)
	return nil
}

// CatCommand writes a document's markdown body to stdout
func CatCommand(deps *Dependencies, id string) error {
	doc, err := deps.Store.Load(id)
	if err != nil {
		return err
	}
	fmt.Print(doc.Body)
	return nil
}
