package routes

import (
	"lomba-portal-backend/app/service"

	"github.com/gin-gonic/gin"
)

// CalendarRoutes mendaftarkan endpoint kalender agregat dan reminder deadline.
func CalendarRoutes(r *gin.Engine, calendar service.CalendarService, reminder service.ReminderService, adminGuard gin.HandlerFunc) {
	r.GET("/api/calendar", calendar.GetCalendar)

	reminders := r.Group("/api/reminders")
	{
		reminders.GET("/deadlines", reminder.CheckDeadlines)
		reminders.POST("/deadlines", adminGuard, reminder.CreateReminder)
	}
}
