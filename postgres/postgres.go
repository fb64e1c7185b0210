// Package postgres installs the charabia codec inside a PostgreSQL
// database: charabia_encode and charabia_decode SQL functions generated
// from a separator configuration, so values sheltered by the application
// can be produced and inspected database-side.
//
// The SQL encoder is the deterministic variant: it is byte-compatible
// with charabia.EncodeFixed for the same separators, and charabia_decode
// accepts anything the Go codec emits under that configuration.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/paraglidehq/charabia"
)

// Config holds the separator configuration the SQL functions are
// generated from.
type Config struct {
	Separators string
}

// DefaultConfig returns a configuration using the ten decimal digits as
// separators, which keeps every letter bucket intact.
func DefaultConfig() Config {
	return Config{Separators: "0123456789"}
}

var ErrConfigMismatch = errors.New("charabia: database config does not match application config")

// Migrate runs the idempotent charabia migration with the given
// configuration. If the database already carries a different separator
// configuration, returns ErrConfigMismatch; regenerating the functions
// under new separators would silently orphan previously encoded values.
func Migrate(ctx context.Context, db *sql.DB, cfg Config) error {
	codec, err := charabia.NewCodec(cfg.Separators)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS _charabia_config (
			id int PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			separators text NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("charabia: create config table: %w", err)
	}

	seps := codec.Separators()
	var stored string
	err = db.QueryRowContext(ctx, `SELECT separators FROM _charabia_config`).Scan(&stored)
	if err == nil {
		if stored != seps {
			return fmt.Errorf("%w: db has separators=%q, app has separators=%q", ErrConfigMismatch, stored, seps)
		}
	} else if errors.Is(err, sql.ErrNoRows) {
		_, err = db.ExecContext(ctx, `INSERT INTO _charabia_config (separators) VALUES ($1)`, seps)
		if err != nil {
			return fmt.Errorf("charabia: insert config: %w", err)
		}
	} else {
		return fmt.Errorf("charabia: read config: %w", err)
	}

	if _, err = db.ExecContext(ctx, generateSQL(codec)); err != nil {
		return fmt.Errorf("charabia: run migrations: %w", err)
	}

	return nil
}

// GetConfig reads the charabia configuration from the database.
func GetConfig(ctx context.Context, db *sql.DB) (Config, error) {
	var cfg Config
	err := db.QueryRowContext(ctx, `SELECT separators FROM _charabia_config`).Scan(&cfg.Separators)
	return cfg, err
}

func generateSQL(codec *charabia.Codec) string {
	enc := codec.EncodingIndex()
	seps := codec.Separators()

	// First candidate letter per digit, for the deterministic encoder.
	var first [10]byte
	for d, bucket := range enc {
		first[d] = bucket[0]
	}

	// Parallel translate() arguments mapping every retained letter back
	// to its digit.
	var allLetters, allDigits strings.Builder
	for d, bucket := range enc {
		allLetters.WriteString(bucket)
		for range bucket {
			allDigits.WriteByte(byte('0' + d))
		}
	}

	firstSep := string([]rune(seps)[0])

	return fmt.Sprintf(`
-- Deterministic charabia encoder (first candidate letter per digit,
-- first separator per gap). Matches charabia.EncodeFixed.
CREATE OR REPLACE FUNCTION charabia_encode(plain text)
  RETURNS text
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT
  AS $$
DECLARE
  result text := '';
BEGIN
  FOR i IN 1..char_length(plain) LOOP
    IF i > 1 THEN
      result := result || '%s';
    END IF;
    result := result || translate(ascii(substring(plain FROM i FOR 1))::text, '0123456789', '%s');
  END LOOP;
  RETURN result;
END;
$$;

-- Strict charabia decoder. Accepts seeded and folded output produced
-- under the same separator configuration.
CREATE OR REPLACE FUNCTION charabia_decode(encoded text)
  RETURNS text
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT
  AS $$
DECLARE
  grp text;
  cp bigint;
  result text := '';
BEGIN
  encoded := replace(encoded, E'\n', '');
  IF encoded = '' THEN
    RETURN '';
  END IF;
  FOREACH grp IN ARRAY regexp_split_to_array(encoded, '[%s]') LOOP
    CONTINUE WHEN grp = '';
    IF char_length(grp) > 7 THEN
      RAISE EXCEPTION 'charabia: the provided text does not seem valid for the associated separator configuration %%', '%s';
    END IF;
    IF grp !~ '^[%s]+$' THEN
      RAISE EXCEPTION 'charabia: unexpected character in token %%', grp;
    END IF;
    cp := translate(grp, '%s', '%s')::bigint;
    IF cp > 1114111 THEN
      RAISE EXCEPTION 'charabia: %% does not seem valid for the associated separator configuration %%', grp, '%s';
    END IF;
    result := result || chr(cp::int);
  END LOOP;
  RETURN result;
END;
$$;
`,
		firstSep,            // joining separator in charabia_encode
		string(first[:]),    // digit-to-letter map in charabia_encode
		seps,                // separator class in regexp_split_to_array
		seps,                // configuration named in the length error
		allLetters.String(), // letter class guard
		allLetters.String(), // translate from
		allDigits.String(),  // translate to
		seps,                // configuration named in the range error
	)
}
