package achievements

// DefaultAchievements contains every achievement Bloom ships with. Order
// matters: evaluation and unlock events follow declaration order.
var DefaultAchievements = []AchievementDefinition{
	// ====== GETTING STARTED ======
	{ID: "first_bloom", Name: "First Bloom", Description: "Complete your first task", Icon: "🌱", Category: CategoryGettingStarted, Rarity: RarityCommon, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 1}, Reward: "A sprout appears in your garden"},
	{ID: "settling_in", Name: "Settling In", Description: "Finish your first focus session", Icon: "🕯️", Category: CategoryGettingStarted, Rarity: RarityCommon, Criteria: Criteria{Counter: CounterTimerSessions, Target: 1}, Reward: "The candle on your desk is lit"},
	{ID: "pause_button", Name: "Pause Button", Description: "Take your first break", Icon: "☕", Category: CategoryGettingStarted, Rarity: RarityCommon, Criteria: Criteria{Counter: CounterBreaksTaken, Target: 1}, Reward: "A steaming cup joins your desk"},
	{ID: "dear_diary", Name: "Dear Diary", Description: "Write your first note", Icon: "📝", Category: CategoryGettingStarted, Rarity: RarityCommon, Criteria: Criteria{Counter: CounterNotesAdded, Target: 1}, Reward: "A small journal appears"},
	{ID: "smaller_steps", Name: "Smaller Steps", Description: "Shrink a task for the first time", Icon: "✂️", Category: CategoryGettingStarted, Rarity: RarityCommon, Criteria: Criteria{Counter: CounterTasksShrunk, Target: 1}, Reward: "A tiny scissors charm"},
	{ID: "through_the_door", Name: "Through the Door", Description: "Open Bloom 5 times", Icon: "🚪", Category: CategoryGettingStarted, Rarity: RarityCommon, Criteria: Criteria{Counter: CounterAppOpens, Target: 5}, Reward: "A welcome mat on the garden path"},

	// ====== TASK MASTERY ======
	{ID: "ten_tended", Name: "Ten Tended", Description: "Complete 10 tasks", Icon: "🌿", Category: CategoryTaskMastery, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 10}, Reward: "A bed of seedlings"},
	{ID: "steady_gardener", Name: "Steady Gardener", Description: "Complete 50 tasks", Icon: "🧑‍🌾", Category: CategoryTaskMastery, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 50}, Reward: "A watering can of your own"},
	{ID: "hundred_harvest", Name: "Hundred Harvest", Description: "Complete 100 tasks", Icon: "🌾", Category: CategoryTaskMastery, Rarity: RarityRare, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 100}, Reward: "The first field turns golden"},
	{ID: "golden_meadow", Name: "Golden Meadow", Description: "Complete 500 tasks", Icon: "🌼", Category: CategoryTaskMastery, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 500}, Reward: "A meadow in full color"},
	{ID: "thousand_petals", Name: "Thousand Petals", Description: "Complete 1,000 tasks", Icon: "🌸", Category: CategoryTaskMastery, Rarity: RarityLegendary, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 1000}, Reward: "Petals drift across every screen"},
	{ID: "daily_five", Name: "Daily Five", Description: "Complete 5 tasks in a single day", Icon: "✋", Category: CategoryTaskMastery, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 5, Timeframe: TimeframeDay}, Reward: "A five-petaled daisy"},
	{ID: "abundant_week", Name: "Abundant Week", Description: "Complete 20 tasks in a single week", Icon: "📅", Category: CategoryTaskMastery, Rarity: RarityRare, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 20, Timeframe: TimeframeWeek}, Reward: "A week ringed in blossoms"},
	{ID: "monthly_meadow", Name: "Monthly Meadow", Description: "Complete 60 tasks in a month", Icon: "🗓️", Category: CategoryTaskMastery, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 60, Timeframe: TimeframeMonth}, Reward: "A calendar page pressed with flowers"},
	{ID: "fresh_start", Name: "Fresh Start", Description: "Complete a task after stopping one", Icon: "🌤️", Category: CategoryTaskMastery, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterCustom, Target: 1, Condition: ConditionCompleteAfterStop}, Reward: "Sun after rain"},
	{ID: "right_sizing", Name: "Right-Sizer", Description: "Shrink three tasks in a row", Icon: "🪆", Category: CategoryTaskMastery, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterCustom, Target: 3, Condition: ConditionConsecutiveShrinks}, Reward: "Nesting dolls for your shelf"},
	{ID: "yo_yo", Name: "Yo-Yo", Description: "Shrink five tasks in a row", Icon: "🪀", Category: CategoryTaskMastery, Rarity: RarityRare, Criteria: Criteria{Counter: CounterConsecutiveShrinks, Target: 5}, Reward: "A carved wooden yo-yo"},
	{ID: "pruning_shears", Name: "Pruning Shears", Description: "Shrink 20 tasks", Icon: "🌳", Category: CategoryTaskMastery, Rarity: RarityRare, Criteria: Criteria{Counter: CounterTasksShrunk, Target: 20}, Reward: "Well-oiled pruning shears"},
	{ID: "knowing_when", Name: "Knowing When", Description: "Stop 5 tasks", Icon: "🛑", Category: CategoryTaskMastery, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterTasksStopped, Target: 5}, Reward: "Letting go is tending too"},

	// ====== FOCUS ======
	{ID: "ten_candles", Name: "Ten Candles", Description: "Finish 10 focus sessions", Icon: "🕯️", Category: CategoryFocus, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterTimerSessions, Target: 10}, Reward: "A shelf of small candles"},
	{ID: "fifty_candles", Name: "Fifty Candles", Description: "Finish 50 focus sessions", Icon: "🔥", Category: CategoryFocus, Rarity: RarityRare, Criteria: Criteria{Counter: CounterTimerSessions, Target: 50}, Reward: "A warm, steady glow"},
	{ID: "constellation", Name: "Constellation", Description: "Finish 200 focus sessions", Icon: "✨", Category: CategoryFocus, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterTimerSessions, Target: 200}, Reward: "Your candles become stars"},
	{ID: "deep_well", Name: "Deep Well", Description: "Accumulate 500 focus minutes", Icon: "🪣", Category: CategoryFocus, Rarity: RarityRare, Criteria: Criteria{Counter: CounterFocusMinutes, Target: 500}, Reward: "A stone well of quiet"},
	{ID: "deep_river", Name: "Deep River", Description: "Accumulate 2,000 focus minutes", Icon: "🏞️", Category: CategoryFocus, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterFocusMinutes, Target: 2000}, Reward: "A river runs through the garden"},
	{ID: "flow_day", Name: "Flow Day", Description: "Focus for 120 minutes in a single day", Icon: "🌊", Category: CategoryFocus, Rarity: RarityRare, Criteria: Criteria{Counter: CounterFocusMinutes, Target: 120, Timeframe: TimeframeDay}, Reward: "A perfect, unhurried wave"},
	{ID: "flow_week", Name: "Flow Week", Description: "Focus for 600 minutes in a single week", Icon: "🌊", Category: CategoryFocus, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterFocusMinutes, Target: 600, Timeframe: TimeframeWeek}, Reward: "Seven days of smooth water"},
	{ID: "four_sittings", Name: "Four Sittings", Description: "Finish 4 focus sessions in a single day", Icon: "🧘", Category: CategoryFocus, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterTimerSessions, Target: 4, Timeframe: TimeframeDay}, Reward: "A cushion in each corner"},

	// ====== SELF CARE ======
	{ID: "rest_ritual", Name: "Rest Ritual", Description: "Take 25 breaks", Icon: "🍵", Category: CategorySelfCare, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterBreaksTaken, Target: 25}, Reward: "A teapot that is always warm"},
	{ID: "recharge_artist", Name: "Recharge Artist", Description: "Take 100 breaks", Icon: "🔋", Category: CategorySelfCare, Rarity: RarityRare, Criteria: Criteria{Counter: CounterBreaksTaken, Target: 100}, Reward: "A hammock between two trees"},
	{ID: "three_pauses", Name: "Three Pauses", Description: "Take 3 breaks in a single day", Icon: "🌤️", Category: CategorySelfCare, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterBreaksTaken, Target: 3, Timeframe: TimeframeDay}, Reward: "Clouds that drift slowly"},
	{ID: "quiet_nights", Name: "Quiet Nights", Description: "Respect quiet hours for 7 days", Icon: "🌙", Category: CategorySelfCare, Rarity: RarityRare, Criteria: Criteria{Counter: CounterCustom, Target: 7, Condition: ConditionQuietHoursRespected}, Reward: "Fireflies at dusk"},
	{ID: "month_of_calm", Name: "Month of Calm", Description: "Respect quiet hours for 30 days", Icon: "🌌", Category: CategorySelfCare, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterQuietHoursDays, Target: 30}, Reward: "The night sky over your garden"},
	{ID: "weekend_off", Name: "Weekend Off", Description: "Stay away for a whole weekend", Icon: "🏖️", Category: CategorySelfCare, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterCustom, Target: 1, Condition: ConditionWeekendRest}, Reward: "An out-of-office sign, gently swinging", HiddenUntilUnlocked: true},

	// ====== CONSISTENCY ======
	{ID: "three_in_bloom", Name: "Three in Bloom", Description: "Keep a 3-day streak", Icon: "🌱", Category: CategoryConsistency, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterStreakDays, Target: 3}, Reward: "Three sprouts in a row"},
	{ID: "one_green_week", Name: "One Green Week", Description: "Keep a 7-day streak", Icon: "🌿", Category: CategoryConsistency, Rarity: RarityRare, Criteria: Criteria{Counter: CounterStreakDays, Target: 7}, Reward: "A full green week"},
	{ID: "thirty_sunrises", Name: "Thirty Sunrises", Description: "Keep a 30-day streak", Icon: "🌅", Category: CategoryConsistency, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterStreakDays, Target: 30}, Reward: "A month of slow mornings"},
	{ID: "evergreen", Name: "Evergreen", Description: "Keep a 100-day streak", Icon: "🌲", Category: CategoryConsistency, Rarity: RarityLegendary, Criteria: Criteria{Counter: CounterStreakDays, Target: 100}, Reward: "A tree that never loses its leaves"},
	{ID: "deep_roots", Name: "Deep Roots", Description: "Reach a longest streak of 14 days", Icon: "🌳", Category: CategoryConsistency, Rarity: RarityRare, Criteria: Criteria{Counter: CounterLongestStreak, Target: 14}, Reward: "Roots that hold through any season"},
	{ID: "regular_visitor", Name: "Regular Visitor", Description: "Open Bloom 100 times", Icon: "🏡", Category: CategoryConsistency, Rarity: RarityRare, Criteria: Criteria{Counter: CounterAppOpens, Target: 100}, Reward: "The garden knows your footsteps"},

	// ====== EXPLORATION ======
	{ID: "branching_out", Name: "Branching Out", Description: "Use 3 different task categories", Icon: "🌿", Category: CategoryExploration, Rarity: RarityUncommon, Criteria: Criteria{Counter: CounterCategoriesUsed, Target: 3}, Reward: "New paths through the garden"},
	{ID: "wide_garden", Name: "Wide Garden", Description: "Use 8 different task categories", Icon: "🗺️", Category: CategoryExploration, Rarity: RarityRare, Criteria: Criteria{Counter: CounterCategoriesUsed, Target: 8}, Reward: "A hand-drawn map of your garden"},
	{ID: "field_notes", Name: "Field Notes", Description: "Write 50 notes", Icon: "📓", Category: CategoryExploration, Rarity: RarityRare, Criteria: Criteria{Counter: CounterNotesAdded, Target: 50}, Reward: "A naturalist's notebook"},
	{ID: "welcome_back", Name: "Welcome Back", Description: "Return after 7 days away", Icon: "🫂", Category: CategoryExploration, Rarity: RarityRare, Criteria: Criteria{Counter: CounterCustom, Target: 7, Condition: ConditionDaysAwayReturn}, Reward: "The garden kept growing for you"},

	// ====== SOCIAL ======
	{ID: "helping_hand", Name: "Helping Hand", Description: "Make a donation", Icon: "💝", Category: CategorySocial, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterCustom, Target: 1, Condition: ConditionDonated}, Reward: "A flower planted somewhere else"},
	{ID: "steady_patron", Name: "Steady Patron", Description: "Donate 5 times", Icon: "💖", Category: CategorySocial, Rarity: RarityEpic, Criteria: Criteria{Counter: CounterDonations, Target: 5}, Reward: "A small grove, planted in your name"},

	// ====== HIDDEN ======
	{ID: "morning_dew", Name: "Morning Dew", Description: "Do something before 7 in the morning", Icon: "🌄", Category: CategoryHidden, Rarity: RarityRare, Criteria: Criteria{Counter: CounterTimeOfDay, Target: 7, Condition: ConditionBefore}, Reward: "Dew on every leaf", HiddenUntilUnlocked: true},
	{ID: "moonlit_moth", Name: "Moonlit Moth", Description: "Do something after midnight", Icon: "🌙", Category: CategoryHidden, Rarity: RarityRare, Criteria: Criteria{Counter: CounterTimeOfDay, Target: 1, Condition: ConditionAfterMidnight}, Reward: "A moth settles on the lantern", HiddenUntilUnlocked: true},
	{ID: "one_one_one", Name: "One One One", Description: "Complete task number 111", Icon: "🔮", Category: CategoryHidden, Rarity: RarityLegendary, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 111}, Reward: "A palindrome pressed in petals", HiddenUntilUnlocked: true},
}

// DefaultCatalog builds the catalog Bloom ships with
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultAchievements)
}
