package main

import (
	"fmt"
	"os"
	"time"

	"github.com/haven-tools/savedit/savedit"
	"github.com/haven-tools/savedit/savedit/catalog"
)

// openSave loads the save file named by the persistent flags.
func openSave() (*savedit.SaveDocument, error) {
	cat := catalog.Default()
	if catalogPath != "" {
		var err error
		cat, err = catalog.Load(catalogPath)
		if err != nil {
			return nil, err
		}
	}
	doc, err := savedit.LoadWithCatalog(savePath, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to open save: %w", err)
	}
	return doc, nil
}

// writeSave persists the document, taking a timestamped backup of the
// current file first when --backup is set.
func writeSave(doc *savedit.SaveDocument) error {
	if backup {
		if err := backupFile(doc.Path()); err != nil {
			return err
		}
	}
	if err := doc.Save(); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	return nil
}

func backupFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read save for backup: %w", err)
	}
	backupPath := fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	fmt.Printf("Backup written: %s\n", backupPath)
	return nil
}
