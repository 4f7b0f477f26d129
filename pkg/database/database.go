package database

import (
	"fmt"
	"log"

	"qudurat_backend/internal/config"
	"qudurat_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection and, when migrate is set, runs
// AutoMigrate and seeds baseline rows. Release deployments skip migration
// unless forced from the command line.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.PlacementQuestion{},
		&model.PlacementResult{},
		&model.SubscriptionPlan{},
		&model.Subscription{},
		&model.Ticket{},
		&model.TicketReply{},
		&model.PointsTransaction{},
		&model.Reward{},
		&model.RewardRedemption{},
		&model.Notification{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaults(db)

	return db, nil
}

// seedDefaults inserts baseline rows the app expects when tables are empty.
func seedDefaults(db *gorm.DB) {
	var questionCount int64
	db.Model(&model.PlacementQuestion{}).Count(&questionCount)
	if questionCount == 0 {
		starterQuestions := []model.PlacementQuestion{
			{Section: model.SectionQuantitative, Order: 1, Content: "ما ناتج ١٢ × ٨؟", OptionA: "٨٦", OptionB: "٩٦", OptionC: "١٠٦", OptionD: "١١٦", CorrectOption: model.OptionB},
			{Section: model.SectionQuantitative, Order: 2, Content: "إذا كان ثمن ٣ أقلام ١٥ ريالاً، فما ثمن ٧ أقلام؟", OptionA: "٢٥ ريالاً", OptionB: "٣٠ ريالاً", OptionC: "٣٥ ريالاً", OptionD: "٤٠ ريالاً", CorrectOption: model.OptionC},
			{Section: model.SectionQuantitative, Order: 3, Content: "ما العدد التالي في المتتابعة: ٢، ٦، ١٨، ٥٤، ...؟", OptionA: "١٠٨", OptionB: "١٢٦", OptionC: "١٦٢", OptionD: "٢١٦", CorrectOption: model.OptionC},
			{Section: model.SectionVerbal, Order: 1, Content: "أكمل التناظر: قلم : كتابة :: مقص : ...", OptionA: "ورق", OptionB: "قص", OptionC: "حديد", OptionD: "خياطة", CorrectOption: model.OptionB},
			{Section: model.SectionVerbal, Order: 2, Content: "ما ضد كلمة «سخاء»؟", OptionA: "كرم", OptionB: "جود", OptionC: "بخل", OptionD: "عطاء", CorrectOption: model.OptionC},
			{Section: model.SectionVerbal, Order: 3, Content: "أكمل الجملة: كلما ارتفعنا عن سطح البحر ... الضغط الجوي.", OptionA: "انخفض", OptionB: "ارتفع", OptionC: "ثبت", OptionD: "تضاعف", CorrectOption: model.OptionA},
		}
		for _, q := range starterQuestions {
			db.Create(&q)
		}
	}

	var planCount int64
	db.Model(&model.SubscriptionPlan{}).Count(&planCount)
	if planCount == 0 {
		defaultPlans := []model.SubscriptionPlan{
			{Name: "باقة شهرية", Description: "وصول كامل لمدة شهر", PriceHalalas: 9900, DurationDays: 30, Enabled: true},
			{Name: "باقة فصلية", Description: "وصول كامل لمدة ثلاثة أشهر", PriceHalalas: 24900, DurationDays: 90, Enabled: true},
			{Name: "باقة سنوية", Description: "وصول كامل لمدة سنة", PriceHalalas: 79900, DurationDays: 365, Enabled: true},
		}
		for _, p := range defaultPlans {
			db.Create(&p)
		}
	}

	var rewardCount int64
	db.Model(&model.Reward{}).Count(&rewardCount)
	if rewardCount == 0 {
		defaultRewards := []model.Reward{
			{Title: "جلسة تقوية مجانية", Cost: 500, Enabled: true},
			{Title: "اختبار تجريبي إضافي", Cost: 200, Enabled: true},
			{Title: "خصم ١٠٪ على التجديد", Cost: 800, Enabled: true},
		}
		for _, r := range defaultRewards {
			db.Create(&r)
		}
	}
}
