package commands

import (
	"fmt"
	"log"

	"crm/backend/internal/pkg/repository/postgresql"

	"golang.org/x/crypto/bcrypt"
)

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            email varchar(255) not null unique,
            password text not null,
            name varchar(255) not null,
            role varchar(50) not null default 'employee',
            is_active boolean not null default true,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       2,
		Description: "Create table: employees.",
		Query: `
        CREATE TABLE IF NOT EXISTS employees (
            id serial primary key,
            user_id int references users(id) on delete set null,
            name varchar(255) not null,
            email varchar(255) not null,
            phone varchar(50),
            position varchar(255),
            department varchar(255),
            address text,
            join_date date,
            status varchar(50),
            is_active boolean not null default true,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	// employee_id carries no foreign key: deleting an employee must keep
	// its attendance history queryable.
	{
		Index:       3,
		Description: "Create table: attendances.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendances (
            id serial primary key,
            user_id int not null references users(id),
            employee_id int not null,
            check_in_time timestamp not null,
            check_out_time timestamp,
            photo_url text,
            check_out_photo text,
            notes text,
            status varchar(50) not null default 'present',
            attendance_date date not null,
            created_at timestamp default now(),
            updated_at timestamp
        );`,
	},
	{
		Index:       4,
		Description: "Index attendances by employee and day.",
		Query: `
        CREATE INDEX IF NOT EXISTS idx_attendances_employee_date
            ON attendances (employee_id, attendance_date);`,
	},
}

// MigrateUP applies the pending schema steps, tracking progress in
// schema_migrations.
func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}

const (
	seedAdminEmail    = "admin@getnada.com"
	seedAdminPassword = "12345678"
)

// SeedAdmin inserts the default admin account when no account with its
// email exists yet.
func SeedAdmin(db *postgresql.Database) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalln("seed admin hash error", err)
	}

	if _, err = db.Exec(`
        INSERT INTO users (email, password, name, role, is_active)
        SELECT ?, ?, 'Admin', 'admin', true
        WHERE NOT EXISTS (SELECT id FROM users WHERE email = ?);
    `, seedAdminEmail, string(hash), seedAdminEmail); err != nil {
		log.Fatalln("seed admin error", err)
	}
}
