package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abdallahsaber065/cpp-helper/internal/config"
	"github.com/abdallahsaber065/cpp-helper/internal/document"
	"github.com/abdallahsaber065/cpp-helper/internal/header"
	"github.com/abdallahsaber065/cpp-helper/internal/proto"
	"github.com/abdallahsaber065/cpp-helper/pkg/types"
)

var (
	generateLine int
	generateHere bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <header>",
	Short: "Generate an implementation for the prototype on a given line",
	Long: `Recognize the function prototype on one line of a header and generate
the matching definition.

By default the definition is appended to the companion source file (resolved
next to the header, then in src/ and parent directories); with --here or
implementation_location = "here" it is inserted below the prototype instead.
A definition that already exists is never regenerated.

Example:
  cpp-helper generate include/widget.h --line 12
  cpp-helper generate widget.h --line 30 --here`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateLine, "line", 0, "1-based line of the prototype (required)")
	generateCmd.Flags().BoolVar(&generateHere, "here", false, "insert below the prototype instead of the source file")
	generateCmd.MarkFlagRequired("line")
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	headerPath := args[0]
	content, err := os.ReadFile(headerPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	doc := document.FromString(string(content))
	pos := document.Position{Line: generateLine - 1}
	p := proto.RecognizeWindow(doc, pos, cfg.ScanWindow)
	if p == nil {
		fmt.Printf("No prototype recognized on line %d of %s\n", generateLine, headerPath)
		return
	}
	log.Debug().Str("name", p.Name).Str("class", p.ClassName).Msg("generate: prototype recognized")

	location := cfg.ImplementationLocation
	if generateHere {
		location = "here"
	}

	if location == "here" {
		if proto.IsImplemented(p.Name, p.ClassName, string(content)) {
			fmt.Printf("%s is already implemented, skipping\n", displayName(p))
			return
		}
		impl := proto.Synthesize(p, types.SynthesizeOptions{
			EmitReturnStatement: cfg.EmitReturnStatement,
			AddTodo:             cfg.AddTodoComment,
		})
		out := doc.InsertAfter(pos.Line, "\n"+impl)
		if err := os.WriteFile(headerPath, []byte(out), 0644); err != nil {
			fmt.Printf("Error writing %s: %v\n", headerPath, err)
			return
		}
		fmt.Printf("Implemented %s below its prototype in %s\n", displayName(p), headerPath)
		return
	}

	srcPath, ok := header.ResolveSourceFile(headerPath, cfg.SourceDirs)
	if !ok {
		srcPath = header.DefaultSourcePath(headerPath)
		log.Debug().Str("path", srcPath).Msg("generate: no companion source found, creating one")
	}

	var srcText string
	if b, err := os.ReadFile(srcPath); err == nil {
		srcText = string(b)
	}
	if proto.IsImplemented(p.Name, p.ClassName, srcText) {
		fmt.Printf("%s is already implemented in %s, skipping\n", displayName(p), srcPath)
		return
	}

	impl := proto.Synthesize(p, types.SynthesizeOptions{
		EmitReturnStatement:   cfg.EmitReturnStatement,
		AddTodo:               cfg.AddTodoComment,
		SuppressPreQualifiers: true,
	})

	srcText = header.EnsureInclude(srcText, filepath.Base(headerPath))
	if !strings.HasSuffix(srcText, "\n") {
		srcText += "\n"
	}
	srcText += "\n" + impl

	if err := os.WriteFile(srcPath, []byte(srcText), 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", srcPath, err)
		return
	}
	fmt.Printf("Implemented %s in %s\n", displayName(p), srcPath)
}

func displayName(p *types.Prototype) string {
	if p.ClassName != "" {
		return p.ClassName + "::" + p.Name
	}
	return p.Name
}
