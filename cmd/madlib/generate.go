// Story generation from the root command.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/storyforge/madlib/internal/dictionary"
	"github.com/storyforge/madlib/internal/story"
)

// generationReport is the --json output of a generation run.
type generationReport struct {
	StoryID string `json:"story_id"`
	Output  string `json:"output"`
	story.Stats
}

// runGenerate executes the full pipeline: load the dictionary, then stream
// the template into the output file. The dictionary is loaded fully before
// the template or output files are opened, so a parse failure produces no
// output file.
func runGenerate(dictPath, templatePath, outPath string) error {
	dict, err := dictionary.Load(dictPath)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}

	engine := story.NewEngine(dict, engineOptions())
	return writeStory(engine, templatePath, outPath)
}

// writeStory streams the template through engine into outPath and prints
// the confirmation or JSON report.
func writeStory(engine *story.Engine, templatePath, outPath string) error {
	tpl, err := os.Open(templatePath)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer tpl.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	stats, runErr := engine.Run(tpl, out)
	if closeErr := out.Close(); runErr == nil && closeErr != nil {
		runErr = fmt.Errorf("close output: %w", closeErr)
	}
	if runErr != nil {
		return runErr
	}

	if flagJSON {
		report := generationReport{
			StoryID: generateStoryID(),
			Output:  outPath,
			Stats:   stats,
		}
		enc, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(enc))
		return nil
	}

	fmt.Printf("Output file: %s\n", outPath)
	return nil
}
