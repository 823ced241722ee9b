package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"guru-mess-api/internal/config"
	"guru-mess-api/internal/store"
)

// Copies every stored submission from one backing to another, keeping ids,
// timestamps and order. Both stores are configured from the same environment.
// Records whose id already exists in the destination are skipped, so an
// interrupted run can be repeated.
//
//	migrate_data -from sqlite -to postgres
func main() {
	from := flag.String("from", config.DriverSQLite, "source store driver")
	to := flag.String("to", config.DriverPostgres, "destination store driver")
	flag.Parse()

	if err := run(context.Background(), config.LoadConfig(), *from, *to, store.Open); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

type opener func(*config.Config) (store.Store, error)

type result struct {
	Contacts     int
	Reservations int
	Skipped      int
}

// run opens both stores, migrates, and closes them before returning.
func run(ctx context.Context, base *config.Config, from, to string, open opener) (err error) {
	if from == to {
		return fmt.Errorf("source and destination are both %q", from)
	}
	if from == config.DriverMemory || to == config.DriverMemory {
		return errors.New("the memory store does not outlive this process; pick persistent drivers")
	}

	src, err := openStore(base, from, open)
	if err != nil {
		return err
	}
	defer closeStore(from, src, &err)

	dst, err := openStore(base, to, open)
	if err != nil {
		return err
	}
	defer closeStore(to, dst, &err)

	log.Printf("Starting data migration from %s to %s...", from, to)

	res, err := migrate(ctx, src, dst)
	if err != nil {
		return err
	}

	log.Printf("Migration completed! %d contact messages, %d reservations, %d already present",
		res.Contacts, res.Reservations, res.Skipped)
	return nil
}

func openStore(base *config.Config, driver string, open opener) (store.Store, error) {
	cfg := *base
	cfg.StoreDriver = driver
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", driver, err)
	}
	st, err := open(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}
	return st, nil
}

func closeStore(driver string, st store.Store, errp *error) {
	if err := st.Close(); err != nil {
		log.Printf("Failed to close %s store: %v", driver, err)
		if *errp == nil {
			*errp = fmt.Errorf("failed to close %s store: %w", driver, err)
		}
	}
}

func migrate(ctx context.Context, src, dst store.Store) (result, error) {
	var res result

	existingContacts, err := dst.Contacts(ctx)
	if err != nil {
		return res, err
	}
	seen := make(map[string]struct{}, len(existingContacts))
	for _, m := range existingContacts {
		seen[m.ID] = struct{}{}
	}

	contacts, err := src.Contacts(ctx)
	if err != nil {
		return res, err
	}
	for i := range contacts {
		if _, ok := seen[contacts[i].ID]; ok {
			res.Skipped++
			continue
		}
		if err := dst.AppendContact(ctx, &contacts[i]); err != nil {
			return res, err
		}
		res.Contacts++
	}
	log.Printf("Migrated %d contact messages", res.Contacts)

	existingReservations, err := dst.Reservations(ctx)
	if err != nil {
		return res, err
	}
	seen = make(map[string]struct{}, len(existingReservations))
	for _, r := range existingReservations {
		seen[r.ID] = struct{}{}
	}

	reservations, err := src.Reservations(ctx)
	if err != nil {
		return res, err
	}
	for i := range reservations {
		if _, ok := seen[reservations[i].ID]; ok {
			res.Skipped++
			continue
		}
		if err := dst.AppendReservation(ctx, &reservations[i]); err != nil {
			return res, err
		}
		res.Reservations++
	}
	log.Printf("Migrated %d reservations", res.Reservations)

	return res, nil
}
