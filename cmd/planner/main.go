package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"focusapp/internal/config"
	"focusapp/internal/gemini"
	"focusapp/internal/models"
	"focusapp/internal/repository"
	"focusapp/internal/service"
	"focusapp/internal/storage"
)

const (
	// authDelay mimics the network round trip of a hosted auth flow so the
	// prompts do not feel instantaneous.
	authDelay = 600 * time.Millisecond

	// assistantCost is the coin price of one assistant question.
	assistantCost = 20

	// quizRewardPerCorrect is the coin payout per correct quiz answer.
	quizRewardPerCorrect = 15
)

// diamondPacks are purchasable with (simulated) real money.
var diamondPacks = []struct {
	Amount int
	Price  int // TL
}{
	{100, 20},
	{200, 50},
	{500, 150},
	{1000, 300},
}

// exchangePacks convert diamonds into coins.
var exchangePacks = []struct {
	Coins int
	Cost  int // diamonds
}{
	{500, 10},
	{1500, 25},
	{5000, 75},
}

type app struct {
	reader *bufio.Reader
	roster *service.RosterService
	ai     *gemini.Client
	email  *service.EmailService
	view   models.ViewState
}

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	local, err := storage.Open(cfg.StoreType, storage.DialectConfig{
		Path: cfg.StorePath,
		URL:  cfg.StoreURL,
	})
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer local.Close()

	log.Printf("Store connection established (type: %s)", cfg.StoreType)

	repo := repository.NewRosterRepository(local, storage.NewMemoryStore())
	roster := service.NewRosterService(repo)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.EmailDebug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	a := &app{
		reader: bufio.NewReader(os.Stdin),
		roster: roster,
		ai:     gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiAccessToken, cfg.GeminiModel),
		email:  emailService,
		view:   roster.RestoreSession(),
	}

	a.run()
}

func (a *app) run() {
	for {
		switch a.view {
		case models.ViewOnboarding:
			a.showOnboarding()
		case models.ViewAuth:
			a.showAuth()
		case models.ViewDashboard:
			if !a.showDashboard() {
				return
			}
		default:
			a.view = models.ViewDashboard
		}
	}
}

// --- onboarding and auth ---

func (a *app) showOnboarding() {
	fmt.Println()
	fmt.Println("=== Focus App ===")
	fmt.Println("Planla, odaklan, kazan. Günlük görevler, sınav takibi ve seri bonusları seni bekliyor.")
	a.prompt("Devam etmek için Enter'a bas...")
	a.view = models.ViewAuth
}

func (a *app) showAuth() {
	fmt.Println()
	fmt.Println("1) Giriş yap")
	fmt.Println("2) Kayıt ol")
	fmt.Println("q) Çıkış")

	switch a.prompt("> ") {
	case "1":
		a.login()
	case "2":
		a.register()
	case "q":
		os.Exit(0)
	}
}

func (a *app) login() {
	name := a.prompt("Ad: ")
	password := a.prompt("Şifre: ")
	remember := a.promptYesNo("Beni hatırla?")

	time.Sleep(authDelay)
	user, err := a.roster.Login(name, password, remember)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fmt.Println("Hatalı ad veya şifre.")
		} else {
			fmt.Printf("Giriş başarısız: %v\n", err)
		}
		return
	}

	fmt.Printf("Hoş geldin, %s!\n", user.Name)
	a.view = models.ViewDashboard
}

func (a *app) register() {
	name := a.prompt("Ad: ")
	password := a.prompt("Şifre (en az 4 karakter): ")
	email := a.prompt("E-posta (boş bırakılabilir): ")
	grade := a.promptInt("Sınıf (1-12): ")
	remember := a.promptYesNo("Beni hatırla?")

	time.Sleep(authDelay)
	user, err := a.roster.Register(name, password, email, grade, remember)
	if err != nil {
		if errors.Is(err, service.ErrNameTaken) {
			fmt.Println("Bu ad zaten kullanılıyor.")
		} else {
			fmt.Printf("Kayıt başarısız: %v\n", err)
		}
		return
	}

	fmt.Printf("Kayıt tamamlandı! %d jeton ile başlıyorsun.\n", user.Coins)
	a.view = models.ViewDashboard
}

// --- dashboard ---

// showDashboard renders the main menu once and dispatches one command.
// Returns false when the user quits the program.
func (a *app) showDashboard() bool {
	user := a.roster.CurrentUser()
	fmt.Println()
	fmt.Printf("— %s | %d. sınıf | 🪙 %d | 💎 %d | Seri: %d gün —\n",
		user.Name, user.Grade, user.Coins, user.Diamonds, user.Streak)
	fmt.Println("tasks     görevler            exams    sınavlar")
	fmt.Println("goals     hedefler            bonus    günlük bonus")
	fmt.Println("shop      mağaza              students öğrenciler")
	fmt.Println("quiz      AI sınav            ask      AI asistan")
	fmt.Println("videos    video bul           solve    ödev çöz")
	fmt.Println("plan      program oluştur     stats    analiz")
	fmt.Println("profile   profil              remind   e-posta özeti")
	fmt.Println("logout    çıkış yap           quit     kapat")

	switch a.prompt("> ") {
	case "tasks":
		a.showTasks()
	case "exams":
		a.showExams()
	case "goals":
		a.showGoals()
	case "bonus":
		a.claimBonus()
	case "shop":
		a.showShop()
	case "students":
		a.showStudents()
	case "quiz":
		a.runQuiz()
	case "ask":
		a.askAssistant()
	case "videos":
		a.findVideos()
	case "solve":
		a.solveHomework()
	case "plan":
		a.createProgram()
	case "stats":
		a.showAnalytics()
	case "profile":
		a.showProfile()
	case "remind":
		a.sendReminder()
	case "logout":
		a.view = a.roster.Logout()
		fmt.Println("Çıkış yapıldı.")
	case "quit":
		return false
	}
	return true
}

// --- tasks ---

func (a *app) showTasks() {
	tasks := a.roster.Tasks()
	if len(tasks) == 0 {
		fmt.Println("Henüz görev yok.")
	}
	for i, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("%2d [%s] %s-%s  %s (%s)\n", i+1, mark, t.StartTime, t.EndTime, t.Title, t.Type)
	}

	fmt.Println("t <no>  tamamla/geri al   a  yeni görev   Enter  geri")
	input := a.prompt("> ")
	switch {
	case input == "a":
		a.addTask()
	case strings.HasPrefix(input, "t "):
		idx, err := strconv.Atoi(strings.TrimSpace(input[2:]))
		if err != nil || idx < 1 || idx > len(tasks) {
			fmt.Println("Geçersiz görev numarası.")
			return
		}
		if err := a.roster.ToggleTask(tasks[idx-1].ID); err != nil {
			fmt.Printf("Kaydedilemedi: %v\n", err)
		}
	}
}

func (a *app) addTask() {
	title := a.prompt("Başlık: ")
	start := a.prompt("Başlangıç (HH:mm): ")
	end := a.prompt("Bitiş (HH:mm): ")
	kind := a.prompt("Tür (class/study/break): ")

	task := models.Task{
		ID:        uuid.New().String(),
		Title:     title,
		StartTime: start,
		EndTime:   end,
		Type:      models.TaskType(kind),
		DayIndex:  models.WeekdayIndex(time.Now()),
	}
	if !task.ValidTimeRange() {
		fmt.Println("Başlangıç saati bitişten önce olmalı.")
		return
	}
	if err := a.roster.AddTasks([]models.Task{task}); err != nil {
		fmt.Printf("Kaydedilemedi: %v\n", err)
		return
	}
	fmt.Println("Görev eklendi.")
}

// --- exams ---

func (a *app) showExams() {
	exams := a.roster.Exams()
	if len(exams) == 0 {
		fmt.Println("Henüz sınav yok.")
	}
	for i, e := range exams {
		score := "—"
		if e.Scored() {
			score = strconv.Itoa(*e.ActualScore)
		}
		fmt.Printf("%2d %s  %s %s  hedef %d  sonuç %s\n", i+1, e.Subject, e.Date, e.Time, e.TargetScore, score)
	}

	fmt.Println("s <no>  sonuç gir   a  yeni sınav   Enter  geri")
	input := a.prompt("> ")
	switch {
	case input == "a":
		a.addExam()
	case strings.HasPrefix(input, "s "):
		idx, err := strconv.Atoi(strings.TrimSpace(input[2:]))
		if err != nil || idx < 1 || idx > len(exams) {
			fmt.Println("Geçersiz sınav numarası.")
			return
		}
		score := a.promptInt("Sonuç (0-100): ")
		if err := a.roster.SetExamScore(exams[idx-1].ID, score); err != nil {
			fmt.Printf("Kaydedilemedi: %v\n", err)
		}
	}
}

func (a *app) addExam() {
	subject := a.prompt("Ders: ")
	date := a.prompt("Tarih (YYYY-MM-DD): ")
	examTime := a.prompt("Saat (HH:mm): ")
	kind := a.prompt("Tür (written/performance/project): ")
	target := a.promptInt("Hedef puan (0-100): ")

	exam := models.Exam{
		ID:          uuid.New().String(),
		Subject:     subject,
		Date:        date,
		Time:        examTime,
		Type:        models.ExamType(kind),
		TargetScore: target,
	}
	if err := a.roster.AddExam(exam); err != nil {
		fmt.Printf("Kaydedilemedi: %v\n", err)
		return
	}
	fmt.Println("Sınav eklendi.")
}

// --- goals ---

func (a *app) showGoals() {
	user := a.roster.CurrentUser()
	if len(user.Goals) == 0 {
		fmt.Println("Henüz hedef yok.")
	}
	for i, g := range user.Goals {
		mark := " "
		if g.Completed {
			mark = "x"
		}
		fmt.Printf("%2d [%s] %s\n", i+1, mark, g.Text)
	}

	fmt.Println("t <no>  tamamla   d <no>  sil   a  yeni hedef   Enter  geri")
	input := a.prompt("> ")
	switch {
	case input == "a":
		text := a.prompt("Hedef: ")
		if err := a.roster.AddGoal(text); err != nil {
			fmt.Printf("Kaydedilemedi: %v\n", err)
		}
	case strings.HasPrefix(input, "t "), strings.HasPrefix(input, "d "):
		idx, err := strconv.Atoi(strings.TrimSpace(input[2:]))
		if err != nil || idx < 1 || idx > len(user.Goals) {
			fmt.Println("Geçersiz hedef numarası.")
			return
		}
		goalID := user.Goals[idx-1].ID
		if strings.HasPrefix(input, "t ") {
			err = a.roster.ToggleGoal(goalID)
		} else {
			err = a.roster.DeleteGoal(goalID)
		}
		if err != nil {
			fmt.Printf("Kaydedilemedi: %v\n", err)
		}
	}
}

// --- economy ---

func (a *app) claimBonus() {
	result, ok := a.roster.ClaimDailyBonus()
	if !ok {
		fmt.Println("Günlük bonus zaten alındı. Yarın tekrar gel!")
		return
	}
	fmt.Printf("Seri: %d gün! +%d jeton", result.Streak, result.Coins)
	if result.Diamonds > 0 {
		fmt.Printf(" +%d elmas", result.Diamonds)
	}
	fmt.Println()
}

func (a *app) showShop() {
	fmt.Println("1) Elmas satın al  2) Jeton al (💎)  3) Çerçeveler  Enter) geri")
	switch a.prompt("> ") {
	case "1":
		for i, p := range diamondPacks {
			fmt.Printf("%d) %d 💎 — %d TL\n", i+1, p.Amount, p.Price)
		}
		idx := a.promptInt("Paket: ")
		if idx < 1 || idx > len(diamondPacks) {
			return
		}
		pack := diamondPacks[idx-1]
		if !a.promptYesNo(fmt.Sprintf("%d Elmas almak için %d TL ödeme yapılsın mı? (Simülasyon)", pack.Amount, pack.Price)) {
			return
		}
		if a.roster.BuyDiamonds(pack.Amount) {
			fmt.Printf("+%d 💎\n", pack.Amount)
		}
	case "2":
		for i, p := range exchangePacks {
			fmt.Printf("%d) %d jeton — %d 💎\n", i+1, p.Coins, p.Cost)
		}
		idx := a.promptInt("Paket: ")
		if idx < 1 || idx > len(exchangePacks) {
			return
		}
		pack := exchangePacks[idx-1]
		if a.roster.ExchangeDiamonds(pack.Cost, pack.Coins) {
			fmt.Printf("+%d jeton\n", pack.Coins)
		} else {
			fmt.Println("Yetersiz elmas.")
		}
	case "3":
		a.showFrames()
	}
}

func (a *app) showFrames() {
	user := a.roster.CurrentUser()
	catalog := models.FrameCatalog()
	for i, f := range catalog {
		status := fmt.Sprintf("%d %s", f.Cost, currencySymbol(f.Currency))
		if user.OwnsFrame(f.ID) {
			status = "sahipsin"
		}
		if user.FrameID == f.ID {
			status = "takılı"
		}
		fmt.Printf("%2d %-20s %-10s %s\n", i+1, f.Name, f.Tier, status)
	}

	idx := a.promptInt("Çerçeve (0 geri): ")
	if idx < 1 || idx > len(catalog) {
		return
	}
	frame := catalog[idx-1]
	if a.roster.BuyFrame(frame.ID) {
		fmt.Printf("%s satın alındı ve takıldı!\n", frame.Name)
	} else if a.roster.CurrentUser().FrameID == frame.ID {
		fmt.Printf("%s takıldı.\n", frame.Name)
	} else {
		fmt.Println("Yetersiz bakiye.")
	}
}

func currencySymbol(c models.FrameCurrency) string {
	if c == models.CurrencyDiamond {
		return "💎"
	}
	return "🪙"
}

// --- students ---

func (a *app) showStudents() {
	current := a.roster.CurrentUser()
	users := a.roster.Users()
	for i, u := range users {
		mark := " "
		if u.ID == current.ID {
			mark = "*"
		}
		fmt.Printf("%2d %s %s (%d. sınıf)\n", i+1, mark, u.Name, u.Grade)
	}

	fmt.Println("<no>  öğrenci değiştir   a  yeni öğrenci   Enter  geri")
	input := a.prompt("> ")
	if input == "a" {
		a.register()
		return
	}
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(users) {
		return
	}
	if a.roster.SwitchUser(users[idx-1].ID) {
		fmt.Printf("Aktif öğrenci: %s\n", users[idx-1].Name)
	}
}

// --- AI features ---

func (a *app) runQuiz() {
	subject := a.prompt("Ders/konu: ")
	level := a.prompt("Seviye (örn. lise): ")
	kind := gemini.QuizKindTest
	if a.prompt("Tür (test/klasik): ") == "klasik" {
		kind = gemini.QuizKindClassic
	}

	fmt.Println("Sorular hazırlanıyor...")
	questions := a.ai.GenerateQuiz(context.Background(), subject, level, kind)
	if len(questions) == 0 {
		fmt.Println("Soru üretilemedi. Daha sonra tekrar dene.")
		return
	}

	correct := 0
	for i, q := range questions {
		fmt.Printf("\n%d) %s\n", i+1, q.Question)
		if q.Kind == gemini.QuizKindTest {
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'A'+j, opt)
			}
			answer := strings.ToUpper(a.prompt("Cevap: "))
			if len(answer) == 1 && int(answer[0]-'A') == q.CorrectIndex {
				fmt.Println("Doğru!")
				correct++
			} else {
				fmt.Printf("Yanlış. %s\n", q.Explanation)
			}
		} else {
			a.prompt("Cevabını yaz (değerlendirme için Enter): ")
			fmt.Printf("Örnek cevap: %s\n", q.Explanation)
			if a.promptYesNo("Doğru kabul edilsin mi?") {
				correct++
			}
		}
	}

	reward := correct * quizRewardPerCorrect
	if reward > 0 {
		a.roster.EarnCoins(reward)
	}
	fmt.Printf("\n%d/%d doğru. +%d jeton kazandın!\n", correct, len(questions), reward)
}

func (a *app) askAssistant() {
	question := a.prompt("Soru: ")
	if question == "" {
		return
	}
	if !a.roster.SpendCoins(assistantCost) {
		fmt.Println("Yetersiz Jeton! Günlük bonusunu topla.")
		return
	}
	fmt.Println("Düşünüyorum...")
	fmt.Println(a.ai.AskAssistant(context.Background(), question))
}

func (a *app) findVideos() {
	topic := a.prompt("Konu: ")
	if topic == "" {
		return
	}
	fmt.Println("Videolar aranıyor...")
	videos := a.ai.FindVideos(context.Background(), topic)
	if len(videos) == 0 {
		fmt.Println("Video bulunamadı.")
		return
	}
	for _, v := range videos {
		fmt.Printf("• %s\n  %s\n", v.Title, v.URI)
	}
}

func (a *app) solveHomework() {
	path := a.prompt("Görsel dosya yolu: ")
	image, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Dosya okunamadı: %v\n", err)
		return
	}

	mimeType := "image/jpeg"
	if strings.HasSuffix(strings.ToLower(path), ".png") {
		mimeType = "image/png"
	}

	fmt.Println("Çözülüyor...")
	fmt.Println(a.ai.SolveHomework(context.Background(), image, mimeType))
}

func (a *app) createProgram() {
	topic := a.prompt("Konu: ")
	hours := a.promptInt("Süre (saat): ")
	difficulty := a.prompt("Zorluk (easy/medium/hard): ")

	fmt.Println("Program hazırlanıyor...")
	items := a.ai.GenerateSchedule(context.Background(), topic, hours, difficulty)
	if len(items) == 0 {
		fmt.Println("Program üretilemedi. Daha sonra tekrar dene.")
		return
	}

	for _, item := range items {
		fmt.Printf("• %s (%s, %d dk)\n", item.Title, item.Type, item.DurationMinutes)
	}
	if !a.promptYesNo("Görev olarak eklensin mi?") {
		return
	}

	// Schedule blocks back to back starting from the next full hour.
	start := time.Now().Truncate(time.Hour).Add(time.Hour)
	tasks := make([]models.Task, 0, len(items))
	for _, item := range items {
		end := start.Add(time.Duration(item.DurationMinutes) * time.Minute)
		tasks = append(tasks, models.Task{
			ID:        uuid.New().String(),
			Title:     item.Title,
			Subtitle:  item.Subtitle,
			StartTime: start.Format("15:04"),
			EndTime:   end.Format("15:04"),
			Type:      models.TaskType(item.Type),
			DayIndex:  models.WeekdayIndex(start),
		})
		start = end
	}
	if err := a.roster.AddTasks(tasks); err != nil {
		fmt.Printf("Kaydedilemedi: %v\n", err)
		return
	}
	fmt.Printf("%d görev eklendi.\n", len(tasks))
}

// --- analytics and profile ---

func (a *app) showAnalytics() {
	user := a.roster.CurrentUser()
	tasks := a.roster.Tasks()
	exams := a.roster.Exams()

	completed, total, progress := service.TaskProgress(tasks)
	fmt.Printf("Görevler: %d/%d tamamlandı (%%%d)\n", completed, total, progress)
	fmt.Printf("Sınav ortalaması: %d\n", service.AverageExamScore(exams))
	fmt.Printf("Kayıtlı ortalama: %d\n", user.AverageScore)
	fmt.Printf("Seri: %d gün\n", user.Streak)
}

func (a *app) showProfile() {
	user := a.roster.CurrentUser()
	frameName := "Yok"
	if frame, ok := models.FindFrame(user.FrameID); ok {
		frameName = frame.Name
	}

	fmt.Printf("Ad: %s\nOkul no: %s\nSınıf: %s (%d. sınıf)\n", user.Name, user.SchoolNumber, user.ClassName, user.Grade)
	fmt.Printf("E-posta: %s\nÇerçeve: %s\nSahip olunan çerçeve: %d\n", user.Email, frameName, len(user.OwnedFrames))

	if a.promptYesNo("Profil düzenlensin mi?") {
		a.editProfile()
	}
}

func (a *app) editProfile() {
	name := a.prompt("Yeni ad (boş: değişme): ")
	className := a.prompt("Yeni şube (boş: değişme): ")
	err := a.roster.UpdateCurrentUser(func(u *models.User) {
		if name != "" {
			u.Name = name
		}
		if className != "" {
			u.ClassName = className
		}
	})
	if err != nil {
		fmt.Printf("Kaydedilemedi: %v\n", err)
		return
	}
	fmt.Println("Profil güncellendi.")
}

// --- email digest ---

func (a *app) sendReminder() {
	if !a.email.IsEnabled() {
		fmt.Println("E-posta servisi yapılandırılmamış (SES_FROM_EMAIL).")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := a.email.SendReminderDigest(ctx, a.roster.CurrentUser(), a.roster.Tasks(), a.roster.Exams(), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrNoRecipient) {
			fmt.Println("Profilinde e-posta adresi yok.")
		} else {
			fmt.Printf("Gönderilemedi: %v\n", err)
		}
		return
	}
	fmt.Println("Hatırlatma özeti gönderildi.")
}

// --- input helpers ---

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

func (a *app) promptInt(label string) int {
	n, err := strconv.Atoi(a.prompt(label))
	if err != nil {
		return 0
	}
	return n
}

func (a *app) promptYesNo(label string) bool {
	answer := strings.ToLower(a.prompt(label + " (e/h): "))
	return answer == "e" || answer == "evet" || answer == "y" || answer == "yes"
}
