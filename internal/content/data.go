package content

import "github.com/davelt/healthtui/internal/model"

// healthTopics is the built-in topic catalog. Keys are lowercase and fixed
// at process start; declaration order drives menu order.
var healthTopics = []model.Topic{
	{
		Key:      "diabetes",
		Title:    "Diabetes Mellitus",
		Category: "Metabolic Disorders",
		Overview: "Chronic condition affecting blood glucose regulation. Type 1 is autoimmune, Type 2 is lifestyle-related.",
		Facts: []model.FactGroup{
			{Label: "Types", Items: []string{"Type 1: Autoimmune condition", "Type 2: Most common", "Gestational: During pregnancy"}},
			{Label: "Symptoms", Items: []string{"Increased thirst", "Frequent urination", "Fatigue", "Blurred vision", "Slow wound healing"}},
			{Label: "Management", Items: []string{"Regular exercise (150 min/week)", "Healthy diet (low glycemic)", "Weight management", "Medication", "Regular monitoring"}},
			{Label: "Prevention", Value: "Maintain healthy weight, regular exercise, balanced diet, limit sugars"},
			{Label: "Stats", Value: "Affects 1 in 10 adults; 463 million people worldwide"},
		},
	},
	{
		Key:      "vaccines",
		Title:    "Vaccines & Immunization",
		Category: "Prevention",
		Overview: "Medical preparations that train immune system to fight diseases.",
		Facts: []model.FactGroup{
			{Label: "Types", Items: []string{"Live attenuated", "Inactivated", "mRNA", "Subunit", "Toxoid"}},
			{Label: "Benefits", Items: []string{"Prevent serious diseases", "Reduce transmission", "Enable herd immunity", "Prevent complications"}},
			{Label: "How They Work", Items: []string{"Introduce antigen safely", "Immune system responds", "Create memory cells", "Future protection"}},
			{Label: "Safety", Value: "Rigorous testing; side effects mild/temporary; serious reactions extremely rare"},
			{Label: "Stats", Value: "Save 2-3 million lives annually"},
		},
	},
	{
		Key:      "nutrition",
		Title:    "Nutrition & Healthy Eating",
		Category: "Lifestyle",
		Overview: "Science of food and its effect on health.",
		Facts: []model.FactGroup{
			{Label: "Food Groups", Items: []string{"Fruits/veggies: 5+ daily", "Whole grains: 3+ daily", "Protein: Lean sources", "Dairy: Low-fat", "Healthy fats"}},
			{Label: "Nutrients", Items: []string{"Carbs (45-65%): Energy", "Protein (10-35%): Tissues", "Fats (20-35%): Hormones"}},
			{Label: "Tips", Items: []string{"Eat variety of colors", "Control portions", "Limit added sugars (<10%)", "Reduce sodium (<2,300mg)", "Stay hydrated"}},
			{Label: "Prevention", Value: "Prevents 40% of chronic diseases"},
			{Label: "Stats", Value: "Poor diet linked to 11 million deaths annually"},
		},
	},
	{
		Key:      "sleep",
		Title:    "Sleep & Sleep Hygiene",
		Category: "Lifestyle",
		Overview: "Essential physiological process for recovery and health.",
		Facts: []model.FactGroup{
			{Label: "Recommended", Value: "Adults: 7-9 hrs; Teens: 8-10 hrs; Children: 9-12 hrs; Infants: 12-17 hrs"},
			{Label: "Stages", Items: []string{"N1 (Light): Transition", "N2 (Light): Body cooling", "N3 (Deep): Restoration", "REM: Memory/dreaming"}},
			{Label: "Benefits", Items: []string{"Immune strength", "Memory consolidation", "Hormone regulation", "Emotional stability", "Physical repair"}},
			{Label: "Tips", Items: []string{"Consistent schedule", "Dark room", "Cool temp (60-67F)", "No screens 1hr before bed", "No caffeine after 2PM"}},
			{Label: "Stats", Value: "1 in 3 adults insufficient sleep; deprivation increases disease risk 30%"},
		},
	},
	{
		Key:      "mental_health",
		Title:    "Mental Health & Wellness",
		Category: "Mental Health",
		Overview: "Psychological and emotional well-being crucial for overall health.",
		Facts: []model.FactGroup{
			{Label: "Conditions", Items: []string{"Depression: Persistent low mood", "Anxiety: Excessive worry", "Stress: Response to demands", "Burnout: Work exhaustion"}},
			{Label: "Management", Items: []string{"Professional therapy", "Exercise (30min, 5x/week)", "Meditation (10min/day)", "Social connections", "Sleep 7-9hrs"}},
			{Label: "Self Care", Items: []string{"Regular exercise", "Maintain relationships", "Creative hobbies", "Journaling", "Nature time"}},
			{Label: "Crisis", Value: "National Crisis Hotline: 988"},
			{Label: "Stats", Value: "1 in 5 adults experience mental illness yearly; 80% treatable with help"},
		},
	},
	{
		Key:      "cardiovascular_health",
		Title:    "Cardiovascular Health & Disease Prevention",
		Category: "Heart & Circulation",
		Overview: "Cardiovascular disease is the leading cause of death worldwide. Prevention is key.",
		Facts: []model.FactGroup{
			{Label: "Types", Items: []string{"Coronary artery disease", "Heart attack", "Stroke", "Heart failure", "Arrhythmias"}},
			{Label: "Risk Factors", Items: []string{"High blood pressure", "High cholesterol", "Smoking", "Diabetes", "Obesity", "Physical inactivity", "Family history"}},
			{Label: "Symptoms", Items: []string{"Chest pain", "Shortness of breath", "Irregular heartbeat", "Fatigue", "Dizziness"}},
			{Label: "Prevention", Items: []string{"Regular exercise (150min/week)", "Mediterranean diet", "Manage stress", "Quit smoking", "Control blood pressure", "Manage weight"}},
			{Label: "Screening", Value: "Blood pressure checks, cholesterol tests, EKG for high-risk groups"},
			{Label: "Stats", Value: "1 in 5 deaths caused by heart disease; 1 death every 34 seconds"},
		},
	},
	{
		Key:      "hypertension",
		Title:    "Hypertension (High Blood Pressure)",
		Category: "Heart & Circulation",
		Overview: "Persistent elevated blood pressure (>=140/90 mmHg) increases heart disease and stroke risk.",
		Facts: []model.FactGroup{
			{Label: "Blood Pressure Ranges", Items: []string{"Normal: <120/80 mmHg", "Elevated: 120-129/<80 mmHg", "Stage 1: 130-139/80-89 mmHg", "Stage 2: >=140/90 mmHg"}},
			{Label: "Symptoms", Items: []string{"Usually asymptomatic", "Headaches", "Shortness of breath", "Nosebleeds"}},
			{Label: "Complications", Items: []string{"Heart disease", "Stroke", "Kidney damage", "Vision problems"}},
			{Label: "Management", Items: []string{"Reduce sodium (<2,300mg/day)", "Regular exercise", "Maintain healthy weight", "DASH diet", "Limit alcohol", "Manage stress", "Medication if needed"}},
			{Label: "Monitoring", Value: "Check BP regularly; home monitoring helps"},
			{Label: "Stats", Value: "Affects 1.13 billion people; leading cause of preventable deaths"},
		},
	},
	{
		Key:      "cholesterol_management",
		Title:    "Cholesterol Management",
		Category: "Heart & Circulation",
		Overview: "High cholesterol is a major risk factor for heart disease and stroke.",
		Facts: []model.FactGroup{
			{Label: "Types", Items: []string{"LDL (bad): Builds up in arteries", "HDL (good): Removes cholesterol", "Triglycerides: Type of fat in blood", "Total: All forms combined"}},
			{Label: "Healthy Levels", Items: []string{"Total: <200 mg/dL", "LDL: <100 mg/dL", "HDL: >40 mg/dL (men), >50 mg/dL (women)", "Triglycerides: <150 mg/dL"}},
			{Label: "Reduction", Items: []string{"Reduce saturated fat", "Increase soluble fiber", "Add plant sterols", "Exercise regularly", "Maintain healthy weight", "Eat more fish/omega-3s"}},
			{Label: "Screening", Value: "Blood tests recommended for all adults"},
			{Label: "Stats", Value: "1 in 3 American adults have high cholesterol"},
		},
	},
	{
		Key:      "respiratory_health",
		Title:    "Respiratory Health & Lung Disease",
		Category: "Lungs & Breathing",
		Overview: "Chronic respiratory diseases affect millions worldwide. Prevention and early detection are critical.",
		Facts: []model.FactGroup{
			{Label: "Conditions", Items: []string{"COPD: Chronic obstructive pulmonary disease", "Asthma: Airway inflammation", "Bronchitis: Airway inflammation", "Emphysema: Lung tissue damage", "Cystic fibrosis: Genetic disorder"}},
			{Label: "Symptoms", Items: []string{"Chronic cough", "Shortness of breath", "Chest tightness", "Wheezing", "Mucus production"}},
			{Label: "Prevention", Items: []string{"Don't smoke", "Avoid secondhand smoke", "Avoid air pollution", "Regular exercise", "Get flu/pneumonia vaccines"}},
			{Label: "Risk Factors", Items: []string{"Smoking", "Air pollution", "Occupational exposure", "Genetic factors"}},
			{Label: "Stats", Value: "6.2M adults with chronic bronchitis; 3rd leading cause of death"},
		},
	},
	{
		Key:      "cancer_prevention",
		Title:    "Cancer Prevention & Screening",
		Category: "Disease Prevention",
		Overview: "Cancer is the 2nd leading cause of death. Prevention and early detection save lives.",
		Facts: []model.FactGroup{
			{Label: "Common Types", Items: []string{"Breast cancer: 1 in 8 women lifetime risk", "Prostate cancer: Most common in men", "Lung cancer: Leading cancer death", "Colorectal cancer: Highly preventable", "Skin cancer: Most common but preventable"}},
			{Label: "Prevention", Items: []string{"Avoid tobacco and secondhand smoke", "Limit alcohol", "Sun protection (SPF 30+)", "Healthy weight", "Regular exercise", "Healthy diet", "Regular screening"}},
			{Label: "Screening", Items: []string{"Mammograms (women 40+)", "PSA tests (men 50+)", "Colonoscopies (adults 45+)", "Pap smears (women 21+)", "Skin checks (regular)"}},
			{Label: "Stats", Value: "1 in 3 Americans diagnosed with cancer; 80% preventable with lifestyle changes"},
		},
	},
	{
		Key:      "bone_health",
		Title:    "Bone Health & Osteoporosis Prevention",
		Category: "Musculoskeletal",
		Overview: "Strong bones are essential for mobility and independence throughout life.",
		Facts: []model.FactGroup{
			{Label: "Bone Disorders", Items: []string{"Osteoporosis: Low bone density", "Osteopenia: Precursor to osteoporosis", "Fractures: Breaks in bones", "Arthritis: Joint inflammation"}},
			{Label: "Risk Factors", Items: []string{"Age", "Gender (women more at risk)", "Family history", "Low calcium/vitamin D", "Sedentary lifestyle", "Smoking"}},
			{Label: "Prevention", Items: []string{"Adequate calcium (1000-1200mg/day)", "Vitamin D (600-800 IU/day)", "Weight-bearing exercise", "Strength training", "Avoid smoking", "Limit alcohol", "Regular screening (women 65+)"}},
			{Label: "Calcium Sources", Items: []string{"Dairy products", "Leafy greens", "Fish with bones", "Fortified foods"}},
			{Label: "Stats", Value: "1 in 3 people over 50 have osteoporosis; preventable in 80% of cases"},
		},
	},
	{
		Key:      "immune_system_health",
		Title:    "Immune System Health & Strength",
		Category: "Immune System",
		Overview: "A strong immune system protects against infections and diseases.",
		Facts: []model.FactGroup{
			{Label: "Immune Boosters", Items: []string{"Sleep: 7-9 hours nightly", "Exercise: 150 min/week moderate activity", "Nutrition: Fruits, veggies, proteins", "Stress management: Meditation, yoga", "Hydration: 2-3 liters water daily", "Social connections", "Hygiene: Hand washing"}},
			{Label: "Key Nutrients", Items: []string{"Vitamin C: Citrus, berries, peppers", "Vitamin D: Sunlight, fatty fish", "Zinc: Nuts, seeds, shellfish", "Selenium: Brazil nuts, fish", "Probiotics: Yogurt, fermented foods"}},
			{Label: "Avoid", Items: []string{"Excessive alcohol", "Smoking", "Chronic stress", "Poor sleep", "Sedentary lifestyle"}},
			{Label: "Vaccination", Value: "Staying current with vaccines strengthens immunity"},
			{Label: "Stats", Value: "Lifestyle changes improve immune function by 30-50%"},
		},
	},
	{
		Key:      "digestive_health",
		Title:    "Digestive Health & Gut Wellness",
		Category: "Digestive System",
		Overview: "Healthy digestion is crucial for nutrient absorption and overall wellness.",
		Facts: []model.FactGroup{
			{Label: "Common Issues", Items: []string{"IBS: Irritable Bowel Syndrome", "GERD: Acid reflux", "Celiac disease: Gluten sensitivity", "Crohn's disease: Inflammatory bowel", "Constipation"}},
			{Label: "Gut Health Tips", Items: []string{"Eat high-fiber foods", "Stay hydrated", "Eat fermented foods (probiotics)", "Reduce processed foods", "Chew thoroughly", "Exercise regularly", "Manage stress", "Regular meal times"}},
			{Label: "Fiber Sources", Items: []string{"Whole grains", "Legumes", "Fruits", "Vegetables", "Nuts and seeds"}},
			{Label: "Foods To Limit", Items: []string{"Processed foods", "High fat", "Excess sugar", "Spicy (if sensitive)"}},
			{Label: "Stats", Value: "70% of immune system in gut; healthy microbiome prevents disease"},
		},
	},
	{
		Key:      "skin_health",
		Title:    "Skin Health & Dermatology",
		Category: "Skin Care",
		Overview: "Healthy skin is a reflection of overall health and requires proper care.",
		Facts: []model.FactGroup{
			{Label: "Skin Conditions", Items: []string{"Acne: Blocked pores, bacteria", "Eczema: Chronic inflammation", "Psoriasis: Accelerated cell growth", "Dermatitis: Skin irritation", "Skin cancer: Melanoma, carcinoma"}},
			{Label: "Care Routine", Items: []string{"Cleanse twice daily", "Moisturize daily", "Use sunscreen (SPF 30+) daily", "Exfoliate 1-2 times weekly", "Stay hydrated", "Get enough sleep", "Manage stress"}},
			{Label: "Sun Protection", Items: []string{"SPF 30+ daily", "Reapply every 2 hours", "Avoid sun 10am-4pm", "Wear protective clothing", "Wear sunglasses", "Check skin regularly"}},
			{Label: "Stats", Value: "1 in 5 Americans get skin cancer; 90% preventable with sun protection"},
		},
	},
	{
		Key:      "exercise_fitness",
		Title:    "Exercise & Physical Fitness",
		Category: "Lifestyle",
		Overview: "Regular physical activity is one of the most important health behaviors.",
		Facts: []model.FactGroup{
			{Label: "Exercise Types", Items: []string{"Cardio: 150 min/week moderate intensity", "Strength: 2-3 sessions/week", "Flexibility: Daily stretching", "Balance: Especially as we age"}},
			{Label: "Health Benefits", Items: []string{"Reduces heart disease risk by 35%", "Prevents diabetes by 40%", "Improves mental health", "Strengthens bones and muscles", "Improves sleep quality", "Increases energy and mood"}},
			{Label: "Getting Started", Items: []string{"Start with 10 minutes daily", "Choose activities you enjoy", "Progress gradually", "Find accountability partner", "Schedule workouts", "Vary activities"}},
			{Label: "Stats", Value: "Regular exercise adds 7-10 years to lifespan"},
		},
	},
}

// healthMyths is the built-in myth registry. Order matters: Lookup returns
// the first token contained in the query.
var healthMyths = []model.Myth{
	{
		Key:      "cold",
		Myth:     "Exposure to cold weather causes colds",
		Truth:    "Viruses cause colds, not cold weather",
		Evidence: "People spend more time indoors in winter, increasing virus transmission",
	},
	{
		Key:      "sugar",
		Myth:     "Sugar makes children hyperactive",
		Truth:    "Scientific studies show no direct link",
		Evidence: "Blind studies found no behavioral changes from sugar vs placebo",
	},
	{
		Key:      "vitamin",
		Myth:     "Taking vitamin C prevents colds",
		Truth:    "Extra vitamin C doesn't prevent colds",
		Evidence: "Large clinical trials show no significant prevention benefit",
	},
	{
		Key:      "water",
		Myth:     "You must drink exactly 8 glasses of water daily",
		Truth:    "Water needs vary by person, activity, and climate",
		Evidence: "Listen to your body's thirst; guideline is ~3.7L for men, 2.7L for women",
	},
	{
		Key:      "knuckles",
		Myth:     "Cracking knuckles causes arthritis",
		Truth:    "Cracking knuckles does NOT cause arthritis",
		Evidence: "33-year study found no link between knuckle-cracking and arthritis",
	},
}

// quizTopicOrder fixes the quiz topic menu order.
var quizTopicOrder = []string{
	"diabetes",
	"vaccines",
	"nutrition",
	"sleep",
	"mental_health",
	"cardiovascular_health",
	"cancer_prevention",
	"bone_health",
	"immune_system_health",
	"exercise_fitness",
}

var quizQuestions = map[string][]model.Question{
	"diabetes": {
		{
			Prompt:      "What is the normal fasting blood glucose level?",
			Options:     []string{"Less than 100 mg/dL", "100-125 mg/dL", "More than 125 mg/dL"},
			Answer:      0,
			Explanation: "Normal is <100 mg/dL. 100-125 indicates prediabetes. >125 indicates diabetes.",
		},
		{
			Prompt:      "Type 1 diabetes is primarily caused by:",
			Options:     []string{"Lifestyle factors", "Autoimmune attack on insulin cells", "Poor diet"},
			Answer:      1,
			Explanation: "Type 1 is autoimmune - the body attacks insulin-producing pancreatic cells.",
		},
		{
			Prompt:      "Which is the most common type of diabetes?",
			Options:     []string{"Type 1", "Type 2", "Gestational"},
			Answer:      1,
			Explanation: "Type 2 accounts for 90-95% of all diabetes cases.",
		},
		{
			Prompt:      "How much exercise per week is recommended for diabetes management?",
			Options:     []string{"30 minutes total", "150 minutes moderate", "300 minutes"},
			Answer:      1,
			Explanation: "150 minutes of moderate-intensity exercise weekly helps manage blood sugar.",
		},
	},
	"vaccines": {
		{
			Prompt:      "When do most vaccine side effects occur?",
			Options:     []string{"Within 15 minutes", "Within 2 weeks", "After 3 months"},
			Answer:      1,
			Explanation: "Most vaccine side effects occur within 2 weeks. Serious delayed effects are extremely rare.",
		},
	},
	"nutrition": {
		{
			Prompt:      "How many servings of fruits and vegetables should you eat daily?",
			Options:     []string{"1-2 servings", "3-4 servings", "5 or more servings"},
			Answer:      2,
			Explanation: "Health experts recommend 5 or more servings of fruits and vegetables daily.",
		},
	},
	"sleep": {
		{
			Prompt:      "How many hours of sleep do adults need per night?",
			Options:     []string{"5-6 hours", "7-9 hours", "10-12 hours"},
			Answer:      1,
			Explanation: "Adults need 7-9 hours of sleep daily for optimal health and function.",
		},
	},
	"mental_health": {
		{
			Prompt:      "What percentage of adults experience mental illness yearly?",
			Options:     []string{"About 1 in 20", "About 1 in 10", "About 1 in 5"},
			Answer:      2,
			Explanation: "About 1 in 5 (20%) of adults experience mental illness yearly. Help is available.",
		},
	},
	"cardiovascular_health": {
		{
			Prompt:      "What is the leading cause of death worldwide?",
			Options:     []string{"Cancer", "Cardiovascular disease", "Respiratory disease"},
			Answer:      1,
			Explanation: "Cardiovascular disease (heart attack, stroke) is the #1 cause of death globally.",
		},
		{
			Prompt:      "Which blood pressure reading indicates hypertension (Stage 2)?",
			Options:     []string{"120/80", "130/85", ">=140/90"},
			Answer:      2,
			Explanation: "Stage 2 hypertension starts at 140/90 mmHg and requires treatment.",
		},
		{
			Prompt:      "How much physical activity reduces heart disease risk?",
			Options:     []string{"10 minutes/week", "75 minutes vigorous/week", "5 hours/week"},
			Answer:      1,
			Explanation: "150 min moderate or 75 min vigorous weekly reduces heart disease by 35%.",
		},
	},
	"cancer_prevention": {
		{
			Prompt:      "What percentage of cancers are preventable?",
			Options:     []string{"30%", "50%", "80%"},
			Answer:      2,
			Explanation: "80% of cancers are preventable through lifestyle changes.",
		},
		{
			Prompt:      "Which is NOT a major modifiable cancer risk factor?",
			Options:     []string{"Smoking", "Alcohol", "Height"},
			Answer:      2,
			Explanation: "Height is not a cancer risk factor. Smoking and alcohol are major risk factors.",
		},
		{
			Prompt:      "At what age should women begin mammogram screening?",
			Options:     []string{"Age 30", "Age 40", "Age 50"},
			Answer:      1,
			Explanation: "Women 40+ should discuss mammography with their doctor; regular screening starts at 50.",
		},
	},
	"bone_health": {
		{
			Prompt:      "What is the recommended daily calcium intake for adults?",
			Options:     []string{"500mg", "800mg", "1000-1200mg"},
			Answer:      2,
			Explanation: "Adults need 1000-1200mg calcium daily for bone health.",
		},
		{
			Prompt:      "Which vitamin is crucial for calcium absorption?",
			Options:     []string{"Vitamin A", "Vitamin C", "Vitamin D"},
			Answer:      2,
			Explanation: "Vitamin D is essential for calcium absorption in the intestines.",
		},
		{
			Prompt:      "What type of exercise is best for bone health?",
			Options:     []string{"Swimming", "Weight-bearing exercise", "Cycling"},
			Answer:      1,
			Explanation: "Weight-bearing exercises (walking, jogging, strength training) build and maintain bone density.",
		},
	},
	"immune_system_health": {
		{
			Prompt:      "What percentage of immune system is in the gut?",
			Options:     []string{"30%", "50%", "70%"},
			Answer:      2,
			Explanation: "70% of our immune system is in the gut, making digestive health crucial.",
		},
		{
			Prompt:      "How much sleep boosts immune function?",
			Options:     []string{"5-6 hours", "7-9 hours", "10+ hours"},
			Answer:      1,
			Explanation: "7-9 hours of sleep strengthens immune response and disease prevention.",
		},
		{
			Prompt:      "Which nutrient is critical for immune cell production?",
			Options:     []string{"Fat", "Zinc", "Sugar"},
			Answer:      1,
			Explanation: "Zinc is essential for immune cell development and function.",
		},
	},
	"exercise_fitness": {
		{
			Prompt:      "How much moderate-intensity exercise is recommended weekly?",
			Options:     []string{"75 minutes", "150 minutes", "300 minutes"},
			Answer:      1,
			Explanation: "150 minutes of moderate-intensity aerobic activity weekly is recommended.",
		},
		{
			Prompt:      "What does regular exercise reduce depression by?",
			Options:     []string{"10%", "20%", "30%"},
			Answer:      2,
			Explanation: "Regular exercise reduces depression symptoms by approximately 30%.",
		},
		{
			Prompt:      "How many years can regular exercise add to lifespan?",
			Options:     []string{"2-3 years", "5-7 years", "7-10 years"},
			Answer:      2,
			Explanation: "Regular physical activity can add 7-10 years to life expectancy.",
		},
	},
}
