package sfxdb

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quasilyte/chipsfx/sfxfile"
)

// Named indexes into the Hyperspace bank.
const (
	SfxLaser = iota
	SfxDamage
	SfxExplosion
	SfxUnused3
	SfxUnused4
	SfxBonus
	SfxBossSpawn
	SfxBossDamage
)

// HyperspaceBank returns a copy of the built-in bank.
func HyperspaceBank() *sfxfile.Bank {
	effects := make([]sfxfile.Effect, len(Hyperspace))
	copy(effects, Hyperspace)
	return &sfxfile.Bank{Effects: effects}
}

// Load reads a bank from the file system.
//
// Files with ".p8" extension are decoded as textual carts,
// everything else is expected to be a binary bank image.
// Only carts can store dead notes (pitch >= 64), the binary
// pitch field is 6 bits wide.
// An empty filename selects the built-in Hyperspace bank.
func Load(filename string) (*sfxfile.Bank, error) {
	if filename == "" {
		return HyperspaceBank(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}

	var bank *sfxfile.Bank
	if strings.EqualFold(filepath.Ext(filename), ".p8") {
		bank, err = sfxfile.ParseCart(bytes.NewReader(data))
	} else {
		bank, err = sfxfile.ParseFromBytes(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(filename), err)
	}
	return bank, nil
}
