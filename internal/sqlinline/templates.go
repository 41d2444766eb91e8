package sqlinline

const QListTemplates = `--sql ef8c174f-7085-4151-a8b0-fc025408781d
select id, title, description, price, coalesce(original_price, 0), category, rating,
       downloads, tags, is_premium, is_free, is_trending, is_new, created_at, updated_at, owner_id
from templates
order by position;
`

const QSelectTemplateByID = `--sql 6494965f-bc53-41db-92f8-f6645b35b023
select id, title, description, price, coalesce(original_price, 0), category, rating,
       downloads, tags, is_premium, is_free, is_trending, is_new, created_at, updated_at, owner_id
from templates
where id = $1::text
limit 1;
`

const QUpsertTemplate = `--sql fa904417-21ca-4082-beb0-e2af66e94528
insert into templates (id, title, description, price, original_price, category, rating, downloads,
                       tags, is_premium, is_free, is_trending, is_new, created_at, updated_at, owner_id, position)
values ($1::text, $2::text, $3::text, $4::int, nullif($5::int, 0), $6::text, $7::float8, $8::int,
        $9::text[], $10::boolean, $11::boolean, $12::boolean, $13::boolean, $14::timestamptz, $15::timestamptz, $16::text, $17::int)
on conflict (id) do update set
    title = excluded.title,
    description = excluded.description,
    price = excluded.price,
    original_price = excluded.original_price,
    category = excluded.category,
    rating = excluded.rating,
    downloads = excluded.downloads,
    tags = excluded.tags,
    is_premium = excluded.is_premium,
    is_free = excluded.is_free,
    is_trending = excluded.is_trending,
    is_new = excluded.is_new,
    updated_at = excluded.updated_at,
    position = excluded.position;
`
