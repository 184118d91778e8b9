package main

import "fmt"

func main() {
	fmt.Println(Sunday.Name(), Monday.Name(), numWeekdays.Name())
	fmt.Println(WEEKDAY_SUNDAY, WEEKDAY_MONDAY, TUE)
	fmt.Println(WeekdayTexts())

	_, ok := ParseWeekday("numweekdays")
	fmt.Println(ok)

	fmt.Println(planets())
	fmt.Println(parsePlanet("Venus"))
	fmt.Println(MERCURY, VENUS)
}
