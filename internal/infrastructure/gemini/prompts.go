package gemini

// extractionPrompt asks the vision model for raw label facts only.
// Scoring stays out of the prompt on purpose: the model reads pixels,
// the engine does the arithmetic.
const extractionPrompt = `You are reading a packaged food label photograph.

Identify the product category. Choose ONE from:
"beverage" (juices, soft drinks, water, tea, coffee, energy drinks, milk drinks)
"dairy" (milk, yogurt, cheese, paneer, butter, cream)
"snack" (chips, biscuits, cookies, namkeen, crackers, wafers, chocolates, candy)
"cereal" (breakfast cereals, oats, muesli, granola)
"instant_meal" (instant noodles, pasta, ready meals, soups)
"condiment" (sauces, ketchup, pickles, jams, spreads, dressings)
"staple" (rice, flour, lentils, whole grains, bread)
"health_product" (protein powder, nutrition bars, health drinks, supplements)
"fruit_vegetable" (packaged fruits, vegetable products, fruit purees)
"other" (anything that does not fit above)

Read the nutrition table exactly as printed, per 100g (solids) or per
100ml (beverages/liquids). Report only what is printed; use null for any
value not shown. Do NOT compute, convert or score anything.

Transcribe the full ingredients list as printed, one entry per list item.

Find the Best Before / Use By / Expiry / MFG date, or "Not visible".

Assess how clearly you could read this label:
"high" = nutrition table and ingredients list fully visible and readable
"medium" = partially visible, some values estimated or inferred
"low" = blurry, angled, poorly lit, or mostly unreadable

Reply ONLY in this exact JSON with no markdown, no extra text:
{
  "category": "<category string>",
  "basis": "<per_100g or per_100ml>",
  "energy_kj": <number or null>,
  "energy_kcal": <number or null>,
  "satfat_g": <number or null>,
  "sugars_g": <number or null>,
  "sodium_mg": <number or null>,
  "salt_g": <number or null>,
  "protein_g": <number or null>,
  "fibre_g": <number or null>,
  "fvnl_pct": <number or null>,
  "calcium_mg": <number or null>,
  "ingredients": ["<ingredient as printed>"],
  "expiry": "<date or Not visible>",
  "confidence": "<high|medium|low>"
}`

// identifyPrompt asks for the product type and brand only.
const identifyPrompt = `Look at this food product label. Reply ONLY in this exact JSON format with no extra text, no markdown: {"product_type": "<2-4 words for product category e.g. instant noodles, potato chips>", "brand": "<brand name as printed on label, or Unknown if not visible>"}`

// brandPrompt asks for the brand name alone, used when the category is
// already cached.
const brandPrompt = `Look at this food product label. What is the brand name printed on it? Reply with ONLY the brand name, nothing else. If not visible, reply: Unknown`
