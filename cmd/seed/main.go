// Command seed resets the persisted snapshot to the built-in default content.
// Useful for local development and for recovering a broken data file.
package main

import (
	"encoding/json"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"taskforce/internal/config"
	"taskforce/internal/domain"
	"taskforce/internal/repository"
	"taskforce/internal/storage"
)

func main() {
	force := flag.Bool("force", false, "overwrite an existing snapshot")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.Open(cfg.StoreBackend, cfg.DataPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if _, exists, err := store.Get(repository.SnapshotKey); err != nil {
		log.Fatal(err)
	} else if exists && !*force {
		log.Fatal("a snapshot already exists; pass -force to overwrite it")
	}

	raw, err := json.Marshal(domain.DefaultSnapshot())
	if err != nil {
		log.Fatal(err)
	}
	if err := store.Put(repository.SnapshotKey, raw); err != nil {
		log.Fatal(err)
	}

	log.Printf("seeded default snapshot into %s", cfg.DataPath)
}
