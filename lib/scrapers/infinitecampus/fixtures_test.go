package infinitecampus

// grades documents served by the mock portal

const gradesDocBasic = `[
  {
    "displayName": "Riverside High School",
    "schoolID": 101,
    "terms": [
      {
        "termName": "Quarter 1",
        "termSeq": 1,
        "startDate": "2024-08-05",
        "endDate": "2024-10-04",
        "courses": [
          {
            "_id": "6278079",
            "courseName": "2 English II",
            "courseNumber": "000703",
            "roomName": "205B",
            "teacherDisplay": "John Doe",
            "gradingTasks": [
              {
                "taskName": "Final Grade",
                "score": "A-",
                "percent": 89.76,
                "totalPoints": 227,
                "pointsEarned": 207
              }
            ]
          }
        ]
      }
    ],
    "courses": []
  }
]`

const gradesDocFiltering = `[
  {
    "displayName": "Riverside High School",
    "schoolID": 101,
    "terms": [
      {
        "termName": "Quarter 1",
        "termSeq": 1,
        "startDate": "2024-08-05",
        "endDate": "2024-10-04",
        "courses": [
          {
            "_id": "1",
            "courseName": "Algebra I",
            "courseNumber": "200101",
            "roomName": "118",
            "teacherDisplay": "Mary Major",
            "gradingTasks": [
              {"taskName": "Final Grade", "score": "B", "percent": 85, "totalPoints": 200, "pointsEarned": 170}
            ]
          },
          {
            "_id": "2",
            "courseName": "Gifted Participation",
            "courseNumber": "900001",
            "roomName": "",
            "teacherDisplay": "Pat Candella",
            "gradingTasks": [
              {"taskName": "Final Grade", "score": "CR", "percent": 100, "totalPoints": 1, "pointsEarned": 1}
            ]
          },
          {
            "_id": "3",
            "courseName": "Advisory",
            "courseNumber": "900002",
            "roomName": "Gym",
            "teacherDisplay": "Alex Rosalez",
            "gradingTasks": [
              {"taskName": "Quarter Grade", "score": "A", "percent": 95, "totalPoints": 10, "pointsEarned": 10}
            ]
          },
          {
            "_id": "4",
            "courseName": "Study Hall",
            "courseNumber": "900003",
            "roomName": "Library",
            "teacherDisplay": "Sam Nguyen",
            "gradingTasks": [
              {"taskName": "Final Grade", "score": "", "percent": 0, "totalPoints": 0, "pointsEarned": 0}
            ]
          },
          {
            "_id": "5",
            "courseName": "Chemistry",
            "courseNumber": "300110",
            "roomName": "Lab 2",
            "teacherDisplay": "Carlos Salazar",
            "gradingTasks": [
              {
                "taskName": "Final Grade",
                "score": "C",
                "percent": 75,
                "totalPoints": 180,
                "pointsEarned": 135,
                "progressScore": "B+",
                "progressPercent": 88.5
              }
            ]
          }
        ]
      }
    ],
    "courses": []
  }
]`

const gradesDocUnnamedTask = `[
  {
    "displayName": "Riverside High School",
    "schoolID": 101,
    "terms": [
      {
        "termName": "Quarter 1",
        "termSeq": 1,
        "startDate": "2024-08-05",
        "endDate": "2024-10-04",
        "courses": [
          {
            "_id": "7",
            "courseName": "World History",
            "courseNumber": "400120",
            "roomName": "210",
            "teacherDisplay": "Jane Roe",
            "gradingTasks": [
              {"taskName": "Quarter Grade", "score": "B", "percent": 86, "totalPoints": 150, "pointsEarned": 129}
            ]
          }
        ]
      }
    ],
    "courses": []
  }
]`

const gradesDocMultiSchool = `[
  {
    "displayName": "Riverside Middle School",
    "schoolID": 101,
    "terms": [
      {
        "termName": "Quarter 1",
        "termSeq": 1,
        "startDate": "2024-08-05",
        "endDate": "2024-10-04",
        "courses": [
          {
            "_id": "10",
            "courseName": "English 9",
            "courseNumber": "100100",
            "roomName": "101",
            "teacherDisplay": "John Stiles",
            "gradingTasks": [
              {"taskName": "Final Grade", "score": "A", "percent": 94, "totalPoints": 100, "pointsEarned": 94}
            ]
          }
        ]
      }
    ],
    "courses": []
  },
  {
    "displayName": "Riverside High School",
    "schoolID": 202,
    "terms": [
      {
        "termName": "Quarter 1",
        "termSeq": 1,
        "startDate": "2024-08-05",
        "endDate": "2024-10-04",
        "courses": [
          {
            "_id": "11",
            "courseName": "AP Calculus AB",
            "courseNumber": "210400",
            "roomName": "305",
            "teacherDisplay": "Richard Miles",
            "gradingTasks": [
              {"taskName": "Final Grade", "score": "A-", "percent": 91.2, "totalPoints": 300, "pointsEarned": 274}
            ]
          }
        ]
      }
    ],
    "courses": []
  }
]`

const gradesDocTwoCourses = `[
  {
    "displayName": "Riverside High School",
    "schoolID": 101,
    "terms": [
      {
        "termName": "Quarter 1",
        "termSeq": 1,
        "startDate": "2024-08-05",
        "endDate": "2024-10-04",
        "courses": [
          {
            "_id": "6278079",
            "courseName": "2 English II",
            "courseNumber": "000703",
            "roomName": "205B",
            "teacherDisplay": "John Doe",
            "gradingTasks": [
              {"taskName": "Final Grade", "score": "A-", "percent": 89.76, "totalPoints": 227, "pointsEarned": 207}
            ]
          },
          {
            "_id": "1111111",
            "courseName": "Spanish 3",
            "courseNumber": "500300",
            "roomName": "114",
            "teacherDisplay": "Maria Garcia",
            "gradingTasks": [
              {"taskName": "Final Grade", "score": "A", "percent": 96, "totalPoints": 120, "pointsEarned": 115}
            ]
          }
        ]
      }
    ],
    "courses": []
  }
]`

const rosterDoc = `[
  {
    "_id": "6278079",
    "sectionPlacements": [
      {"periodName": "6", "periodSeq": 7, "startTime": "14:00:00", "endTime": "15:00:00"}
    ]
  },
  {
    "_id": "9999999",
    "sectionPlacements": []
  }
]`
