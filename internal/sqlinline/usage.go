package sqlinline

const QInsertDownloadEvent = `--sql cf7a8815-92ba-4c70-ad1f-6159736a9ec5
insert into download_events (id, user_id, premium, occurred_on, occurred_month, created_at)
values (gen_random_uuid(), $1::uuid, $2::boolean, $3::date, $4::text, now());
`

const QCountPremiumForMonth = `--sql 48d2d47a-7344-4561-a16b-0d12fd7a0673
select count(*)
from download_events
where user_id = $1::uuid
  and premium
  and occurred_month = $2::text;
`

const QCountDownloadsForDay = `--sql 880e745d-3319-4e92-aa93-b1c52eec0b1c
select count(*)
from download_events
where user_id = $1::uuid
  and occurred_on = $2::date;
`
