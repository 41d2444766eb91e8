package sqlinline

const QInsertUser = `--sql 4224cf0f-b65c-46ba-b776-ad231733444d
insert into users (id, email, mobile, display_name, role, plan, password_hash,
                   email_verified, seller_verified, seller_profile, created_at, updated_at)
values ($1::uuid, $2::text, nullif($3::text, ''), $4::text, $5::text, $6::text, $7::bytea,
        $8::boolean, $9::boolean, coalesce($10::jsonb, 'null'::jsonb), $11::timestamptz, $12::timestamptz);
`

const QSelectUserByID = `--sql d49ba2f0-cda3-495b-80d4-eac2445ac24d
select id, email, coalesce(mobile, ''), display_name, role, plan, password_hash,
       email_verified, seller_verified, seller_profile, created_at, updated_at
from users
where id = $1::uuid
limit 1;
`

const QSelectUserByEmail = `--sql f1b5686f-71e5-4c63-a200-cff64e13e410
select id, email, coalesce(mobile, ''), display_name, role, plan, password_hash,
       email_verified, seller_verified, seller_profile, created_at, updated_at
from users
where email = $1::text
limit 1;
`

const QSelectUserByMobile = `--sql cdf57459-086d-4325-9e90-3129a6edc715
select id, email, coalesce(mobile, ''), display_name, role, plan, password_hash,
       email_verified, seller_verified, seller_profile, created_at, updated_at
from users
where mobile = $1::text
limit 1;
`

const QUpdateUserPlan = `--sql 4ede0be7-cc57-4236-88d0-c1847758cb7c
update users
set plan = $2::text,
    updated_at = now()
where id = $1::uuid;
`
