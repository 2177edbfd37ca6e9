package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdallahsaber065/cpp-helper/internal/config"
	"github.com/abdallahsaber065/cpp-helper/internal/document"
	"github.com/abdallahsaber065/cpp-helper/internal/header"
	"github.com/abdallahsaber065/cpp-helper/internal/proto"
	"github.com/abdallahsaber065/cpp-helper/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status [dir]",
	Short: "List header prototypes without a known implementation",
	Long: `Walk the project's headers, recognize every prototype, and report the
ones that have no matching definition in the implementation index or in the
header itself.

Run 'cpp-helper scan' first to populate the index.

Example:
  cpp-helper status
  cpp-helper status include/`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	idx, err := storage.Open(dir)
	if err != nil {
		fmt.Printf("Error opening index: %v\n", err)
		return
	}
	defer idx.Close()

	files, impls, err := idx.Stats()
	if err != nil {
		fmt.Printf("Error reading index: %v\n", err)
		return
	}

	fmt.Println("cpp-helper Status")
	fmt.Println("=================")
	fmt.Println()
	fmt.Printf("Indexed: %d file(s), %d definition(s)\n", files, impls)
	fmt.Println()

	missing := 0
	checked := 0

	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
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
		if !header.IsHeader(path) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		doc := document.FromString(string(content))

		for i := 0; i < doc.LineCount(); i++ {
			p := proto.RecognizeWindow(doc, document.Position{Line: i}, cfg.ScanWindow)
			if p == nil {
				continue
			}
			checked++

			// Inline definition in the header counts.
			if proto.IsImplemented(p.Name, p.ClassName, string(content)) {
				continue
			}
			className := p.ClassName
			if bidx := strings.IndexByte(className, '<'); bidx >= 0 {
				className = className[:bidx]
			}
			if ok, err := idx.HasImplementation(className, p.Name); err == nil && ok {
				continue
			}
			fmt.Printf("  %s:%d: %s\n", path, i+1, displayName(p))
			missing++
		}
		return nil
	})

	fmt.Println()
	fmt.Printf("Prototypes checked: %d\n", checked)
	fmt.Printf("Unimplemented:      %d\n", missing)
}
