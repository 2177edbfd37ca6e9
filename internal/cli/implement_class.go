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

var implementClassName string

var implementClassCmd = &cobra.Command{
	Use:   "implement-class <header>",
	Short: "Generate implementations for every unimplemented method of a class",
	Long: `Walk the body of a class declaration and generate a definition for every
method prototype that does not already have one.

All generated definitions for one run are written in a single batch, so line
numbers never go stale between insertions.

Example:
  cpp-helper implement-class include/widget.h --class Widget`,
	Args: cobra.ExactArgs(1),
	Run:  runImplementClass,
}

func init() {
	implementClassCmd.Flags().StringVar(&implementClassName, "class", "", "name of the class to implement (required)")
	implementClassCmd.MarkFlagRequired("class")
}

func runImplementClass(cmd *cobra.Command, args []string) {
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
	methods := proto.ClassMethods(doc, implementClassName)
	if len(methods) == 0 {
		fmt.Printf("No method prototypes found for class %s in %s\n", implementClassName, headerPath)
		return
	}
	log.Debug().Int("count", len(methods)).Str("class", implementClassName).Msg("implement-class: prototypes found")

	toSource := cfg.ImplementationLocation == "source"
	targetPath := headerPath
	targetText := string(content)
	if toSource {
		srcPath, ok := header.ResolveSourceFile(headerPath, cfg.SourceDirs)
		if !ok {
			srcPath = header.DefaultSourcePath(headerPath)
		}
		targetPath = srcPath
		targetText = ""
		if b, err := os.ReadFile(srcPath); err == nil {
			targetText = string(b)
		}
		targetText = header.EnsureInclude(targetText, filepath.Base(headerPath))
	}

	added := 0
	skipped := 0
	for _, m := range methods {
		if proto.IsImplemented(m.Proto.Name, m.Proto.ClassName, targetText) {
			skipped++
			continue
		}
		impl := proto.Synthesize(m.Proto, types.SynthesizeOptions{
			EmitReturnStatement:   cfg.EmitReturnStatement,
			AddTodo:               cfg.AddTodoComment,
			SuppressPreQualifiers: toSource,
		})
		if !strings.HasSuffix(targetText, "\n") && targetText != "" {
			targetText += "\n"
		}
		targetText += "\n" + impl
		added++
	}

	if added == 0 {
		fmt.Printf("All %d methods of %s are already implemented\n", len(methods), implementClassName)
		return
	}
	if err := os.WriteFile(targetPath, []byte(targetText), 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", targetPath, err)
		return
	}
	fmt.Printf("Implemented %d method(s) of %s in %s (%d already present)\n",
		added, implementClassName, targetPath, skipped)
}
