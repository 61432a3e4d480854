package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/prismagen/tsgen/cli/internal/config"
	"github.com/prismagen/tsgen/cli/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a tsgen project",
	Long:  `Create a starter schema.prisma and a .tsgen.yaml config file.`,
	RunE:  runInit,
}

var initYes bool

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept all defaults without prompting")

	rootCmd.AddCommand(initCmd)
}

const starterSchema = `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

generator kysely {
  provider = "tsgen"
  output   = "%s"
}

model User {
  id    String @id @default(uuid()) @db.Uuid
  email String @unique
  name  String?
  posts Post[]
}

model Post {
  id       String  @id @default(uuid()) @db.Uuid
  title    String
  author   User    @relation(fields: [authorId], references: [id])
  authorId String  @db.Uuid
}
`

func runInit(cmd *cobra.Command, args []string) error {
	ui.PrintHeader("tsgen", "Project Setup")

	answers := struct {
		SchemaPath string
		OutputPath string
	}{
		SchemaPath: "schema.prisma",
		OutputPath: "./generated",
	}

	if !initYes {
		questions := []*survey.Question{
			{
				Name: "SchemaPath",
				Prompt: &survey.Input{
					Message: "Where should the schema file live?",
					Default: answers.SchemaPath,
				},
			},
			{
				Name: "OutputPath",
				Prompt: &survey.Input{
					Message: "Where should generated TypeScript go?",
					Default: answers.OutputPath,
				},
			},
		}
		if err := survey.Ask(questions, &answers); err != nil {
			return err
		}
	}

	if exists, _ := afero.Exists(config.AppFs, answers.SchemaPath); exists {
		ui.PrintWarning("%s already exists, leaving it untouched", answers.SchemaPath)
	} else {
		schema := fmt.Sprintf(starterSchema, answers.OutputPath)
		if err := afero.WriteFile(config.AppFs, answers.SchemaPath, []byte(schema), 0o644); err != nil {
			return fmt.Errorf("failed to write schema: %w", err)
		}
		ui.PrintSuccess("Created %s", answers.SchemaPath)
	}

	cfg := &config.Config{
		SchemaPath: answers.SchemaPath,
		OutputPath: answers.OutputPath,
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	ui.PrintSuccess("Saved configuration")

	fmt.Println()
	ui.PrintSection("Next Steps")
	ui.PrintList([]string{
		"Edit " + answers.SchemaPath + " to describe your database",
		"Run: tsgen generate",
		"Import the generated DB interface in your Kysely client",
	})

	return nil
}
