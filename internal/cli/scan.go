package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abdallahsaber065/cpp-helper/internal/document"
	"github.com/abdallahsaber065/cpp-helper/internal/header"
	"github.com/abdallahsaber065/cpp-helper/internal/proto"
	"github.com/abdallahsaber065/cpp-helper/internal/storage"
	"github.com/abdallahsaber065/cpp-helper/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Index existing function definitions",
	Long: `Scan the project's source files and index every function definition
found, so 'status' can report unimplemented prototypes without re-reading
the whole tree.

Files whose content hash is unchanged since the last scan are skipped.

Example:
  cpp-helper scan          # Scan the current directory
  cpp-helper scan src/     # Scan a specific directory`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScan,
}

func runScan(cmd *cobra.Command, args []string) {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	idx, err := storage.Open(dir)
	if err != nil {
		fmt.Printf("Error opening index: %v\n", err)
		return
	}
	defer idx.Close()

	fmt.Println("Scanning source files...")

	scanned := 0
	unchanged := 0
	total := 0

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			name := info.Name()
			if name != "." && (strings.HasPrefix(name, ".") || name == "build" || name == "node_modules" || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if !header.IsSource(path) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("scan: read failed")
			return nil
		}

		hash := storage.HashContent(content)
		if prev, ok, err := idx.FileHash(path); err == nil && ok && prev == hash {
			unchanged++
			return nil
		}

		defs := proto.ScanDefinitions(document.FromString(string(content)))
		impls := make([]types.ImplRecord, 0, len(defs))
		for _, d := range defs {
			impls = append(impls, types.ImplRecord{
				Path:      path,
				ClassName: d.ClassName,
				Name:      d.Name,
				Signature: d.Signature,
				Line:      d.Line + 1,
			})
		}
		if err := idx.ReplaceFile(path, hash, impls); err != nil {
			log.Error().Err(err).Str("file", path).Msg("scan: index update failed")
			return nil
		}
		log.Debug().Str("file", path).Int("definitions", len(defs)).Msg("scan: indexed")
		scanned++
		total += len(defs)
		return nil
	})
	if err != nil {
		fmt.Printf("Warning: scan completed with errors: %v\n", err)
	}

	fmt.Println()
	fmt.Printf("Scanned %d file(s), %d unchanged\n", scanned, unchanged)
	fmt.Printf("Indexed %d definition(s)\n", total)
}
