package sqlinline

// Schema lists the idempotent DDL applied by the migration runner.
var Schema = []string{
	`create table if not exists users (
    id              uuid primary key,
    email           text not null unique,
    mobile          text unique,
    display_name    text not null,
    role            text not null,
    plan            text not null default 'free',
    password_hash   bytea not null,
    email_verified  boolean not null default false,
    seller_verified boolean not null default false,
    seller_profile  jsonb,
    created_at      timestamptz not null default now(),
    updated_at      timestamptz not null default now()
);`,
	`create table if not exists templates (
    id             text primary key,
    title          text not null,
    description    text not null default '',
    price          int not null check (price >= 0),
    original_price int check (original_price >= price),
    category       text not null,
    rating         float8 not null default 0 check (rating >= 0 and rating <= 5),
    downloads      int not null default 0 check (downloads >= 0),
    tags           text[] not null default '{}',
    is_premium     boolean not null default false,
    is_free        boolean not null default false,
    is_trending    boolean not null default false,
    is_new         boolean not null default false,
    created_at     timestamptz not null,
    updated_at     timestamptz not null,
    owner_id       text not null,
    position       int not null default 0,
    check (not (is_premium and is_free))
);`,
	`create table if not exists download_events (
    id             uuid primary key,
    user_id        uuid not null,
    premium        boolean not null,
    occurred_on    date not null,
    occurred_month text not null,
    created_at     timestamptz not null default now()
);`,
	`create index if not exists idx_download_events_daily on download_events (user_id, occurred_on);`,
	`create index if not exists idx_download_events_monthly on download_events (user_id, occurred_month) where premium;`,
}
