package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"focusapp/internal/config"
	"focusapp/internal/repository"
	"focusapp/internal/service"
	"focusapp/internal/storage"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")
	importMerge := importCmd.Bool("merge", false, "Merge into existing roster instead of replacing it")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	local, err := storage.Open(cfg.StoreType, storage.DialectConfig{
		Path: cfg.StorePath,
		URL:  cfg.StoreURL,
	})
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer local.Close()

	repo := repository.NewRosterRepository(local, storage.NewMemoryStore())
	backupService := service.NewBackupService(repo)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(backupService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(backupService, *importInput, *importMerge)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backupService *service.BackupService, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	log.Printf("Exporting roster to: %s", outputPath)
	data, err := backupService.ExportToFile(outputPath)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	log.Printf("Export complete! %d users written", len(data.Users))
}

func handleImport(backupService *service.BackupService, inputPath string, merge bool) {
	// Check if file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatalf("Input file does not exist: %s", inputPath)
	}

	if !merge {
		fmt.Print("WARNING: This will replace the existing roster. Type 'yes' to confirm: ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			log.Println("Import cancelled")
			return
		}
	}

	log.Printf("Importing roster from: %s", inputPath)
	count, err := backupService.ImportFromFile(inputPath, merge)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import complete! %d users in roster", count)
}

func printUsage() {
	fmt.Println("Usage: backup <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  export    Export the roster to a JSON file")
	fmt.Println("  import    Import a roster from a JSON file")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  backup export -output roster.json")
	fmt.Println("  backup import -input roster.json -merge")
}
