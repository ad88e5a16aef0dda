// Package asset provides the IDE's asset management: a SQL-backed asset
// index with optional redis caching, consumed by the asset browser panel.
package asset

import (
	"database/sql"
	"fmt"
	"strings"
)

// Type is an asset category.
type Type string

const (
	TypeTexture  Type = "texture"
	TypeMesh     Type = "mesh"
	TypeAudio    Type = "audio"
	TypeScript   Type = "script"
	TypeMaterial Type = "material"
	TypeShader   Type = "shader"
)

// Categories lists all asset categories in browser display order.
func Categories() []Type {
	return []Type{TypeTexture, TypeMesh, TypeAudio, TypeScript, TypeMaterial, TypeShader}
}

// Info describes one indexed asset.
type Info struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type Type   `json:"type"`
	Size int64  `json:"size"`
}

// Options configures a Manager.
type Options struct {
	// Driver is the database/sql driver name: "sqlite3" (default) or
	// "oracle". The driver must be imported by the main package.
	Driver string
	// DSN is the data source name. Defaults to an in-memory sqlite
	// database seeded with sample assets.
	DSN string
	// Cache, when set, fronts category listings with redis.
	Cache *Cache
}

// Manager is the asset management system behind the IDE's asset browser.
type Manager struct {
	db     *sql.DB
	driver string
	cache  *Cache
}

// NewManager opens the asset index. Call Initialize before use.
func NewManager(opts Options) (*Manager, error) {
	driver := opts.Driver
	if driver == "" {
		driver = "sqlite3"
	}
	dsn := opts.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open asset index: %w", err)
	}
	// A pooled in-memory sqlite database is per-connection; pin the pool to
	// one connection so every query sees the same database.
	if driver == "sqlite3" && strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping asset index: %w", err)
	}

	return &Manager{db: db, driver: driver, cache: opts.Cache}, nil
}

// Initialize creates the asset table and seeds sample assets when the index
// is empty, so a fresh in-memory run has something to browse.
func (m *Manager) Initialize() error {
	var ddl string
	if m.driver == "oracle" {
		ddl = "CREATE TABLE assets (name VARCHAR2(255), path VARCHAR2(1024), type VARCHAR2(32), size_bytes NUMBER)"
	} else {
		ddl = "CREATE TABLE IF NOT EXISTS assets (name TEXT, path TEXT, type TEXT, size_bytes INTEGER)"
	}
	if _, err := m.db.Exec(ddl); err != nil {
		// Oracle has no IF NOT EXISTS; ORA-00955 means the table is there.
		if !(m.driver == "oracle" && strings.Contains(err.Error(), "ORA-00955")) {
			return fmt.Errorf("create asset table: %w", err)
		}
	}

	n, err := m.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		for _, a := range sampleAssets() {
			if err := m.Import(a); err != nil {
				return err
			}
		}
	}
	return nil
}

// Import adds an asset to the index and invalidates the cached listing for
// its category.
func (m *Manager) Import(info Info) error {
	query := m.rebind("INSERT INTO assets (name, path, type, size_bytes) VALUES (?, ?, ?, ?)")
	if _, err := m.db.Exec(query, info.Name, info.Path, string(info.Type), info.Size); err != nil {
		return fmt.Errorf("import asset %s: %w", info.Name, err)
	}
	if m.cache != nil {
		m.cache.Invalidate(listKey(info.Type))
	}
	return nil
}

// List returns all assets of one category, cache-aside when a cache is
// configured.
func (m *Manager) List(t Type) ([]Info, error) {
	if m.cache != nil {
		if assets, ok := m.cache.GetAssets(listKey(t)); ok {
			return assets, nil
		}
	}

	assets, err := m.query("SELECT name, path, type, size_bytes FROM assets WHERE type = ? ORDER BY name", string(t))
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		m.cache.PutAssets(listKey(t), assets)
	}
	return assets, nil
}

// Search returns assets whose name contains term (case-insensitive),
// narrowed by any additional filters. An empty term matches everything.
func (m *Manager) Search(term string, filters ...Filter) ([]Info, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	assets, err := m.query("SELECT name, path, type, size_bytes FROM assets WHERE LOWER(name) LIKE ? ORDER BY name", pattern)
	if err != nil {
		return nil, err
	}

	if len(filters) == 0 {
		return assets, nil
	}
	var out []Info
	for _, a := range assets {
		if matchesAll(a, filters) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Count returns the number of indexed assets.
func (m *Manager) Count() (int, error) {
	var n int
	if err := m.db.QueryRow("SELECT COUNT(*) FROM assets").Scan(&n); err != nil {
		return 0, fmt.Errorf("count assets: %w", err)
	}
	return n, nil
}

// Close closes the index.
func (m *Manager) Close() error {
	return m.db.Close()
}

func (m *Manager) query(query string, args ...interface{}) ([]Info, error) {
	rows, err := m.db.Query(m.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	var assets []Info
	for rows.Next() {
		var a Info
		var typ string
		if err := rows.Scan(&a.Name, &a.Path, &typ, &a.Size); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		a.Type = Type(typ)
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// rebind rewrites ? placeholders to :n for oracle.
func (m *Manager) rebind(query string) string {
	if m.driver != "oracle" {
		return query
	}
	out := query
	for i := 1; strings.Contains(out, "?"); i++ {
		out = strings.Replace(out, "?", fmt.Sprintf(":%d", i), 1)
	}
	return out
}

func listKey(t Type) string {
	return "assets:" + string(t)
}

func sampleAssets() []Info {
	return []Info{
		{Name: "grass.png", Path: "assets/textures/grass.png", Type: TypeTexture, Size: 24576},
		{Name: "stone.png", Path: "assets/textures/stone.png", Type: TypeTexture, Size: 31744},
		{Name: "cube.mesh", Path: "assets/meshes/cube.mesh", Type: TypeMesh, Size: 2048},
		{Name: "player.mesh", Path: "assets/meshes/player.mesh", Type: TypeMesh, Size: 184320},
		{Name: "ambient.ogg", Path: "assets/audio/ambient.ogg", Type: TypeAudio, Size: 1048576},
		{Name: "footsteps.ogg", Path: "assets/audio/footsteps.ogg", Type: TypeAudio, Size: 524288},
		{Name: "spawn.lua", Path: "assets/scripts/spawn.lua", Type: TypeScript, Size: 1337},
		{Name: "metal.mat", Path: "assets/materials/metal.mat", Type: TypeMaterial, Size: 512},
		{Name: "toon.shader", Path: "assets/shaders/toon.shader", Type: TypeShader, Size: 4096},
	}
}
