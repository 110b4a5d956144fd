package store

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS wells (
    id                TEXT PRIMARY KEY,
    well_no           TEXT        NOT NULL DEFAULT '',
    well_type         TEXT        NOT NULL DEFAULT 'CORED',
    diameter          TEXT        NOT NULL DEFAULT '',
    manometer_height  TEXT        NOT NULL DEFAULT '',
    groundwater_depth TEXT        NOT NULL DEFAULT '',
    planned_depth     TEXT        NOT NULL DEFAULT '',
    actual_depth      TEXT        NOT NULL DEFAULT '',
    coordinate_x      TEXT        NOT NULL DEFAULT '',
    coordinate_y      TEXT        NOT NULL DEFAULT '',
    coordinate_z      TEXT        NOT NULL DEFAULT '',
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS test_stages (
    id                    TEXT PRIMARY KEY,
    well_id               TEXT    NOT NULL REFERENCES wells (id) ON DELETE CASCADE,
    position              INTEGER NOT NULL,
    start_depth           TEXT    NOT NULL DEFAULT '',
    end_depth             TEXT    NOT NULL DEFAULT '',
    pressure_type         TEXT    NOT NULL DEFAULT 'TYPE_B',
    max_pressure          TEXT    NOT NULL DEFAULT '',
    is_reversible         BOOLEAN NOT NULL DEFAULT TRUE,
    packer_type           TEXT    NOT NULL DEFAULT '',
    packer_depth          TEXT    NOT NULL DEFAULT '',
    measurements          JSONB   NOT NULL DEFAULT '[]',
    representative_lugeon TEXT    NOT NULL DEFAULT '0.00',
    flow_type             TEXT    NOT NULL DEFAULT 'Laminar',
    is_flow_type_manual   BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS test_stages_well_id_idx ON test_stages (well_id, position);

CREATE TABLE IF NOT EXISTS lithology_segments (
    id                  TEXT PRIMARY KEY,
    well_id             TEXT    NOT NULL REFERENCES wells (id) ON DELETE CASCADE,
    position            INTEGER NOT NULL,
    start_depth         TEXT    NOT NULL DEFAULT '',
    end_depth           TEXT    NOT NULL DEFAULT '',
    formation           TEXT    NOT NULL DEFAULT '',
    description         TEXT    NOT NULL DEFAULT '',
    rqd                 TEXT    NOT NULL DEFAULT '',
    weathering          TEXT    NOT NULL DEFAULT '',
    lugeon              TEXT    NOT NULL DEFAULT '',
    permeability_status TEXT    NOT NULL DEFAULT '',
    ud_marker           BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS lithology_segments_well_id_idx ON lithology_segments (well_id, position);
`

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, pool *Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
