package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"

	"kldcms/internal/models"
)

// Seed populates the database with the default admin credential and
// baseline reference data. Every insert is guarded by a does-it-exist
// check so running it repeatedly is safe.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedNewsCategories(db); err != nil {
		return err
	}
	if err := seedProductCategories(db); err != nil {
		return err
	}
	if err := seedTimeline(db); err != nil {
		return err
	}
	if err := seedCompanyInfo(db); err != nil {
		return err
	}
	if err := seedSettings(db); err != nil {
		return err
	}
	return nil
}

// seedAdmin upserts the default admin account. Email and password come
// from the environment so deployments can override them.
func seedAdmin(db *sql.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@kld-algeria.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123456"
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return fmt.Errorf("seed check admin: %w", err)
	}
	if count > 0 {
		slog.Info("admin user already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
	`, email, string(hash), "Admin", models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user", "email", email)
	return nil
}

// localizedJSON marshals a LocalizedText for direct use in seed SQL.
func localizedJSON(en, zh, fr, ar string) []byte {
	data, _ := json.Marshal(models.LocalizedText{
		models.LocaleEN: en,
		models.LocaleZH: zh,
		models.LocaleFR: fr,
		models.LocaleAR: ar,
	})
	return data
}

func seedNewsCategories(db *sql.DB) error {
	categories := []struct {
		name []byte
		slug string
		sort int
	}{
		{localizedJSON("Company Updates", "公司动态", "Actualités", "أخبار الشركة"), "company-updates", 1},
		{localizedJSON("Technology", "技术", "Technologie", "التكنولوجيا"), "technology", 2},
		{localizedJSON("Industry News", "行业新闻", "Nouvelles de l'industrie", "أخبار الصناعة"), "industry-news", 3},
		{localizedJSON("Events", "活动", "Événements", "الفعاليات"), "events", 4},
	}

	for _, c := range categories {
		_, err := db.Exec(`
			INSERT INTO news_categories (name, slug, sort_order)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, sort_order = EXCLUDED.sort_order
		`, c.name, c.slug, c.sort)
		if err != nil {
			return fmt.Errorf("seed news category %s: %w", c.slug, err)
		}
	}

	slog.Info("news categories seeded")
	return nil
}

func seedProductCategories(db *sql.DB) error {
	categories := []struct {
		name []byte
		slug string
		sort int
	}{
		{localizedJSON("Production Management", "生产管理", "Gestion de production", "إدارة الإنتاج"), "production-management", 1},
		{localizedJSON("Data Analytics", "数据分析", "Analytique de données", "تحليل البيانات"), "data-analytics", 2},
		{localizedJSON("Safety & Compliance", "安全合规", "Sécurité et conformité", "السلامة والامتثال"), "safety-compliance", 3},
		{localizedJSON("Asset Management", "资产管理", "Gestion des actifs", "إدارة الأصول"), "asset-management", 4},
	}

	for _, c := range categories {
		_, err := db.Exec(`
			INSERT INTO product_categories (name, slug, sort_order)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, sort_order = EXCLUDED.sort_order
		`, c.name, c.slug, c.sort)
		if err != nil {
			return fmt.Errorf("seed product category %s: %w", c.slug, err)
		}
	}

	slog.Info("product categories seeded")
	return nil
}

func seedTimeline(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM timeline").Scan(&count); err != nil {
		return fmt.Errorf("seed check timeline: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := []struct {
		year  string
		title []byte
		desc  []byte
	}{
		{"2015", localizedJSON("Company founded in Algiers", "公司在阿尔及尔成立", "Fondation de la société à Alger", "تأسيس الشركة في الجزائر العاصمة"),
			localizedJSON("Started as a digital services provider for the national energy sector.", "作为国家能源行业的数字服务提供商起步。", "Débuts en tant que fournisseur de services numériques pour le secteur énergétique national.", "بدأت كمزود خدمات رقمية لقطاع الطاقة الوطني.")},
		{"2018", localizedJSON("First digital oilfield deployment", "首个数字油田项目交付", "Premier déploiement de champ pétrolier numérique", "أول نشر لحقل نفطي رقمي"),
			localizedJSON("Delivered a full production-monitoring platform for a southern field.", "为南部油田交付完整的生产监控平台。", "Livraison d'une plateforme complète de suivi de production pour un champ du sud.", "تسليم منصة كاملة لمراقبة الإنتاج لحقل جنوبي.")},
		{"2021", localizedJSON("Strategic partnership with Sonatrach", "与索纳特拉克建立战略合作", "Partenariat stratégique avec Sonatrach", "شراكة استراتيجية مع سوناطراك"),
			localizedJSON("Signed a long-term agreement to digitalize upstream operations.", "签署上游业务数字化长期协议。", "Signature d'un accord à long terme pour numériser les opérations amont.", "توقيع اتفاقية طويلة الأمد لرقمنة العمليات الاستخراجية.")},
		{"2024", localizedJSON("AI analytics platform launch", "人工智能分析平台发布", "Lancement de la plateforme d'analyse IA", "إطلاق منصة التحليلات بالذكاء الاصطناعي"),
			localizedJSON("Brought predictive maintenance and production optimization to market.", "推出预测性维护与生产优化产品。", "Mise sur le marché de la maintenance prédictive et de l'optimisation de la production.", "طرح الصيانة التنبؤية وتحسين الإنتاج في السوق.")},
	}

	for i, item := range items {
		_, err := db.Exec(`
			INSERT INTO timeline (year, title, description, sort_order)
			VALUES ($1, $2, $3, $4)
		`, item.year, item.title, item.desc, i)
		if err != nil {
			return fmt.Errorf("seed timeline %s: %w", item.year, err)
		}
	}

	slog.Info("timeline seeded")
	return nil
}

func seedCompanyInfo(db *sql.DB) error {
	entries := []struct {
		key   string
		value []byte
	}{
		{"name", localizedJSON("KLD Algeria", "昆仑数智阿尔及利亚", "KLD Algérie", "كونلون الجزائر")},
		{"tagline", localizedJSON("Digital services for oil and gas", "油气行业数字化服务", "Services numériques pour le pétrole et le gaz", "خدمات رقمية للنفط والغاز")},
		{"address", localizedJSON("Hydra Business District, Algiers, Algeria", "阿尔及利亚阿尔及尔海德拉商务区", "Quartier d'affaires d'Hydra, Alger, Algérie", "حي الأعمال حيدرة، الجزائر العاصمة")},
		{"mission", localizedJSON("Accelerating the digital transformation of the Algerian energy sector.", "加速阿尔及利亚能源行业的数字化转型。", "Accélérer la transformation numérique du secteur énergétique algérien.", "تسريع التحول الرقمي لقطاع الطاقة الجزائري.")},
	}

	for _, e := range entries {
		// Write-if-absent: existing values are operator-edited content and
		// must not be overwritten by restarts.
		_, err := db.Exec(`
			INSERT INTO company_info (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING
		`, e.key, e.value)
		if err != nil {
			return fmt.Errorf("seed company info %s: %w", e.key, err)
		}
	}

	slog.Info("company info seeded")
	return nil
}

func seedSettings(db *sql.DB) error {
	entries := []struct {
		key   string
		value string
	}{
		{"contactEmail", `"contact@kld-algeria.com"`},
		{"contactPhone", `"+213 21 00 00 00"`},
		{"socialLinks", `{"linkedin": "https://www.linkedin.com/company/kld-algeria"}`},
	}

	for _, e := range entries {
		_, err := db.Exec(`
			INSERT INTO settings (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING
		`, e.key, []byte(e.value))
		if err != nil {
			return fmt.Errorf("seed setting %s: %w", e.key, err)
		}
	}

	slog.Info("settings seeded")
	return nil
}
